package method

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lmmlab/paper-writer/internal/dto"
	"github.com/lmmlab/paper-writer/internal/entity"
	"github.com/lmmlab/paper-writer/pkg/logger"
	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

type fakeNormalizer struct {
	err error
}

func (f *fakeNormalizer) Normalize(_ context.Context, data []byte) (entity.EncodedImage, error) {
	if f.err != nil {
		return entity.EncodedImage{}, f.err
	}

	return entity.EncodedImage{
		Base64:      string(data),
		ContentType: "image/jpeg",
		Size:        len(data),
	}, nil
}

type fakeGenerator struct {
	completion *entity.Completion
	err        error

	calls  int
	prompt string
	images []entity.EncodedImage
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, images []entity.EncodedImage) (*entity.Completion, error) {
	f.calls++
	f.prompt = prompt
	f.images = images

	if f.err != nil {
		return nil, f.err
	}

	return f.completion, nil
}

func uploads(names ...string) []dto.ImageUpload {
	out := make([]dto.ImageUpload, 0, len(names))
	for _, n := range names {
		out = append(out, dto.ImageUpload{Name: n, ContentType: "image/png", Data: []byte(n)})
	}

	return out
}

func TestGenerate_RejectsZeroImages(t *testing.T) {
	gen := &fakeGenerator{}
	uc := New(&fakeNormalizer{}, gen, logger.New("error"))

	_, err := uc.Generate(context.Background(), "some domain", nil)
	if !errors.Is(err, errs.ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator must not be called without images, got %d calls", gen.calls)
	}
}

func TestGenerate_PreservesImageOrder(t *testing.T) {
	gen := &fakeGenerator{
		completion: &entity.Completion{
			Content:          "The proposed framework...",
			Model:            "test-model",
			PromptTokens:     12,
			CompletionTokens: 34,
		},
	}
	uc := New(&fakeNormalizer{}, gen, logger.New("error"))

	section, err := uc.Generate(context.Background(), "Vision transformer classifier", uploads("a", "b", "c"))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
	if len(gen.images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(gen.images))
	}
	for i, want := range []string{"a", "b", "c"} {
		if gen.images[i].Base64 != want {
			t.Fatalf("image %d out of order: got %q, want %q", i, gen.images[i].Base64, want)
		}
	}
	if !strings.Contains(gen.prompt, "3 diagram(s)") {
		t.Fatalf("prompt does not mention the image count:\n%s", gen.prompt)
	}

	if section.Content != "The proposed framework..." {
		t.Fatalf("unexpected content %q", section.Content)
	}
	if section.Model != "test-model" || section.ImageCount != 3 {
		t.Fatalf("unexpected section metadata: %+v", section)
	}
	if section.PromptTokens != 12 || section.CompletionTokens != 34 {
		t.Fatalf("usage not carried over: %+v", section)
	}
	if section.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}
}

func TestGenerate_NormalizerFailureStopsRequest(t *testing.T) {
	gen := &fakeGenerator{}
	uc := New(&fakeNormalizer{err: fmt.Errorf("decode: %w", errs.ErrImageDecode)}, gen, logger.New("error"))

	_, err := uc.Generate(context.Background(), "domain", uploads("a"))
	if !errors.Is(err, errs.ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator must not be called after a normalizer failure")
	}
}

func TestGenerate_GeneratorFailurePropagatesKind(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("upstream: %w", errs.ErrGeneration)}
	uc := New(&fakeNormalizer{}, gen, logger.New("error"))

	section, err := uc.Generate(context.Background(), "domain", uploads("a"))
	if !errors.Is(err, errs.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if section != nil {
		t.Fatalf("no section must be returned on failure, got %+v", section)
	}
}
