package infrastructure

import (
	"context"

	"github.com/lmmlab/paper-writer/internal/entity"
)

type (
	ImageNormalizer interface {
		Normalize(ctx context.Context, data []byte) (entity.EncodedImage, error)
	}

	MethodGenerator interface {
		Generate(ctx context.Context, prompt string, images []entity.EncodedImage) (*entity.Completion, error)
	}
)
