package groq

import (
	openaigo "github.com/openai/openai-go/v3"

	"github.com/lmmlab/paper-writer/internal/entity"
)

// buildUserContent assembles one text part followed by one image part per
// diagram, preserving input order. Images travel inline as data URIs.
func buildUserContent(prompt string, images []entity.EncodedImage) []openaigo.ChatCompletionContentPartUnionParam {
	parts := make([]openaigo.ChatCompletionContentPartUnionParam, 0, 1+len(images))
	parts = append(parts, openaigo.TextContentPart(prompt))

	for _, img := range images {
		parts = append(parts, openaigo.ImageContentPart(openaigo.ChatCompletionContentPartImageImageURLParam{
			URL: img.DataURI(),
		}))
	}

	return parts
}
