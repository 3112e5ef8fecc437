package output

import "context"

type ChatPort interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}
