package entity

// EncodedImage is a normalized diagram ready for inline transport:
// JPEG bytes encoded as base64, within the remote endpoint's size limit.
type EncodedImage struct {
	Base64      string `json:"base64"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
}

func (i EncodedImage) DataURI() string {
	return "data:" + i.ContentType + ";base64," + i.Base64
}
