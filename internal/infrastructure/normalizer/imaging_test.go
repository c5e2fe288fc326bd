package normalizer

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"testing"

	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src.Set(x, y, color.RGBA{
				R: uint8((x*7 + y) % 256),
				G: uint8((y*5 + x) % 256),
				B: uint8((x + y*3) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png encode error: %v", err)
	}

	return buf.Bytes()
}

func TestNormalize_ResizesLongEdge(t *testing.T) {
	n := New(1024, 85, 4*1024*1024)

	img, err := n.Normalize(context.Background(), makePNG(t, 2000, 1500))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if img.Width != 1024 || img.Height != 768 {
		t.Fatalf("expected 1024x768, got %dx%d", img.Width, img.Height)
	}
	if img.ContentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", img.ContentType)
	}
}

func TestNormalize_KeepsSmallImages(t *testing.T) {
	n := New(1024, 85, 4*1024*1024)

	img, err := n.Normalize(context.Background(), makePNG(t, 300, 200))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if img.Width != 300 || img.Height != 200 {
		t.Fatalf("expected 300x200, got %dx%d", img.Width, img.Height)
	}
}

func TestNormalize_NoResizeWhenDisabled(t *testing.T) {
	n := New(0, 0, 0)

	img, err := n.Normalize(context.Background(), makePNG(t, 2000, 1500))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if img.Width != 2000 || img.Height != 1500 {
		t.Fatalf("expected 2000x1500, got %dx%d", img.Width, img.Height)
	}
}

func TestNormalize_OutputWithinTransportLimit(t *testing.T) {
	limit := 4 * 1024 * 1024
	n := New(1024, 85, limit)

	img, err := n.Normalize(context.Background(), makePNG(t, 4000, 4000))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if len(img.Base64) > limit {
		t.Fatalf("encoded payload is %d bytes, over the %d limit", len(img.Base64), limit)
	}
	if img.Width != 1024 || img.Height != 1024 {
		t.Fatalf("expected 1024x1024, got %dx%d", img.Width, img.Height)
	}
}

func TestNormalize_Base64RoundTrip(t *testing.T) {
	n := New(1024, 85, 4*1024*1024)

	img, err := n.Normalize(context.Background(), makePNG(t, 640, 480))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(img.Base64)
	if err != nil {
		t.Fatalf("base64 decode error: %v", err)
	}
	if len(raw) != img.Size {
		t.Fatalf("decoded %d bytes, Size says %d", len(raw), img.Size)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decoded payload is not an image: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg payload, got %q", format)
	}
	if cfg.Width != img.Width || cfg.Height != img.Height {
		t.Fatalf("payload is %dx%d, entity says %dx%d", cfg.Width, cfg.Height, img.Width, img.Height)
	}
}

func TestNormalize_DecodeError(t *testing.T) {
	n := New(1024, 85, 4*1024*1024)

	_, err := n.Normalize(context.Background(), []byte("definitely not an image"))
	if !errors.Is(err, errs.ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
}

func TestNormalize_TooLarge(t *testing.T) {
	n := New(0, 85, 10)

	_, err := n.Normalize(context.Background(), makePNG(t, 64, 64))
	if !errors.Is(err, errs.ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}
