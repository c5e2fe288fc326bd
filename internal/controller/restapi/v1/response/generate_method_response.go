package response

type GenerateMethod struct {
	ID               string `json:"id"`
	Method           string `json:"method"`
	Model            string `json:"model"`
	ImageCount       int    `json:"image_count"`
	PromptTokens     int64  `json:"prompt_tokens"`
	CompletionTokens int64  `json:"completion_tokens"`
	CreatedAt        string `json:"created_at"`
}
