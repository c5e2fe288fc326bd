package groq

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/lmmlab/paper-writer/config"
	"github.com/lmmlab/paper-writer/internal/entity"
	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

// Client calls Groq's OpenAI-compatible chat-completion endpoint with a
// single multimodal user message. One attempt per request; the SDK's retry
// layer is disabled.
type Client struct {
	client openaigo.Client

	model       string
	temperature float64
	maxTokens   int64
	timeout     time.Duration
}

func New(cfg config.Groq) *Client {
	client := openaigo.NewClient(
		option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.RequestTimeout),
	)

	return &Client{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.RequestTimeout,
	}
}

func (c *Client) Generate(ctx context.Context, prompt string, images []entity.EncodedImage) (*entity.Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.UserMessage(buildUserContent(prompt, images)),
		},
		Temperature: openaigo.Float(c.temperature),
		MaxTokens:   openaigo.Int(c.maxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("groq - Client - Generate - c.client.Chat.Completions.New: %w: %v", errs.ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq - Client - Generate: %w: empty choices", errs.ErrGeneration)
	}

	return &entity.Completion{
		Content:          resp.Choices[0].Message.Content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
