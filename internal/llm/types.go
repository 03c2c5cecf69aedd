package llm

import "context"

type Provider interface {
	// Generate takes a system instruction and a user prompt and returns the model's answer
	Generate(ctx context.Context, system string, user string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

type Response struct {
	Content string
	Usage   Usage
}
