package errs

import "errors"

var (
	ErrNoImages          = errors.New("no images provided")
	ErrImageDecode       = errors.New("image decode failed")
	ErrImageTooLarge     = errors.New("encoded image exceeds transport limit")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrGeneration        = errors.New("method generation failed")
)
