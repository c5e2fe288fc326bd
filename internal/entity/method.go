package entity

import (
	"time"

	"github.com/google/uuid"
)

// MethodSection is a generated "Proposed Method" draft. Transient,
// single-request lifetime.
type MethodSection struct {
	ID uuid.UUID `json:"id"`

	Domain     string `json:"domain"`
	Content    string `json:"content"`
	Model      string `json:"model"`
	ImageCount int    `json:"image_count"`

	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`

	CreatedAt time.Time `json:"created_at"`
}

// Completion is a single model response.
type Completion struct {
	Content          string
	Model            string
	PromptTokens     int64
	CompletionTokens int64
}
