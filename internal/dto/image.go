package dto

type ImageUpload struct {
	Name        string
	ContentType string
	Data        []byte
}
