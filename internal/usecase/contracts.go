package usecase

import (
	"context"

	"github.com/lmmlab/paper-writer/internal/dto"
	"github.com/lmmlab/paper-writer/internal/entity"
)

type (
	MethodUseCase interface {
		Generate(ctx context.Context, domain string, uploads []dto.ImageUpload) (*entity.MethodSection, error)
	}
)
