package normalizer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/lmmlab/paper-writer/internal/entity"
	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

// ImageNormalizer converts an uploaded raster image into a base64 JPEG
// that fits the remote endpoint's inline payload limit.
type ImageNormalizer struct {
	maxDimension    int // 0 disables downsampling
	quality         int // 0 means codec default
	maxEncodedBytes int // 0 disables the limit check
}

func New(maxDimension, quality, maxEncodedBytes int) *ImageNormalizer {
	return &ImageNormalizer{
		maxDimension:    maxDimension,
		quality:         quality,
		maxEncodedBytes: maxEncodedBytes,
	}
}

func (n *ImageNormalizer) Normalize(ctx context.Context, data []byte) (entity.EncodedImage, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return entity.EncodedImage{}, fmt.Errorf("ImageNormalizer - Normalize - imaging.Decode: %w: %v", errs.ErrImageDecode, err)
	}

	// Downsample preserving aspect ratio; Fit never upscales.
	if n.maxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > n.maxDimension || bounds.Dy() > n.maxDimension {
			img = imaging.Fit(img, n.maxDimension, n.maxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	var opts []imaging.EncodeOption
	if n.quality > 0 {
		opts = append(opts, imaging.JPEGQuality(n.quality))
	}

	// JPEG drops alpha, giving the required 3-channel representation.
	err = imaging.Encode(&buf, img, imaging.JPEG, opts...)
	if err != nil {
		return entity.EncodedImage{}, fmt.Errorf("ImageNormalizer - Normalize - imaging.Encode: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	// The remote limit applies to the inline base64 payload.
	if n.maxEncodedBytes > 0 && len(encoded) > n.maxEncodedBytes {
		return entity.EncodedImage{}, fmt.Errorf("ImageNormalizer - Normalize: %w: %d bytes", errs.ErrImageTooLarge, len(encoded))
	}

	bounds := img.Bounds()

	return entity.EncodedImage{
		Base64:      encoded,
		ContentType: "image/jpeg",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Size:        buf.Len(),
	}, nil
}
