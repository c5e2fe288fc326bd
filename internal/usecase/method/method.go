package method

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lmmlab/paper-writer/internal/dto"
	"github.com/lmmlab/paper-writer/internal/entity"
	"github.com/lmmlab/paper-writer/internal/infrastructure"
	"github.com/lmmlab/paper-writer/pkg/logger"
	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

type MethodUseCase struct {
	normalizer infrastructure.ImageNormalizer
	generator  infrastructure.MethodGenerator

	logger logger.Interface
}

func New(
	normalizer infrastructure.ImageNormalizer,
	generator infrastructure.MethodGenerator,
	l logger.Interface,
) *MethodUseCase {
	return &MethodUseCase{
		normalizer: normalizer,
		generator:  generator,
		logger:     l,
	}
}

func (uc *MethodUseCase) Generate(ctx context.Context, domain string, uploads []dto.ImageUpload) (*entity.MethodSection, error) {
	// No diagrams - nothing to analyze; rejected before any network call.
	if len(uploads) == 0 {
		return nil, fmt.Errorf("MethodUseCase - Generate: %w", errs.ErrNoImages)
	}

	images := make([]entity.EncodedImage, 0, len(uploads))

	for _, upload := range uploads {
		img, err := uc.normalizer.Normalize(ctx, upload.Data)
		if err != nil {
			return nil, fmt.Errorf("MethodUseCase - Generate - uc.normalizer.Normalize: %w", err)
		}

		images = append(images, img)
	}

	prompt := BuildPrompt(domain, len(images))

	completion, err := uc.generator.Generate(ctx, prompt, images)
	if err != nil {
		return nil, fmt.Errorf("MethodUseCase - Generate - uc.generator.Generate: %w", err)
	}

	uc.logger.Info("method generated, model=%s, images=%d, completion_tokens=%d",
		completion.Model, len(images), completion.CompletionTokens)

	return &entity.MethodSection{
		ID:               uuid.New(),
		Domain:           domain,
		Content:          completion.Content,
		Model:            completion.Model,
		ImageCount:       len(images),
		PromptTokens:     completion.PromptTokens,
		CompletionTokens: completion.CompletionTokens,
		CreatedAt:        time.Now(),
	}, nil
}
