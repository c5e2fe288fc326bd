package validate

const (
	MaxFileSize int64 = 10 * 1024 * 1024

	MaxDomainLen int = 8192
)

var (
	AllowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}

	AllowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)
