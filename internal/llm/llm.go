package llm

import (
	"context"
	"fmt"

	"github.com/edutechlabs/edutech-agents/internal/config"
)

// New builds the provider selected by LLM_PROVIDER.
func New(ctx context.Context, cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(ctx, &cfg.Gemini)
	case "openai", "azure":
		return NewOpenAI(&cfg.OpenAI, cfg.Provider)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
