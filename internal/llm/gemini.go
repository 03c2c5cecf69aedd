package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/edutechlabs/edutech-agents/internal/config"
)

// Gemini client implementation backed by the Google GenAI SDK.
type Gemini struct {
	client *genai.Client
	cfg    *config.GeminiConfig
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for provider gemini")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		cfg:    cfg,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, system string, user string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:       g.cfg.Model,
		Temperature: 0,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	temperature := float32(options.Temperature)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(options.MaxTokens),
	}
	if system != "" {
		if contents := genai.Text(system); len(contents) > 0 {
			genCfg.SystemInstruction = contents[0]
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, options.Model, genai.Text(user), genCfg)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Content: responseText(resp),
	}
	if um := resp.UsageMetadata; um != nil {
		response.Usage = Usage{
			PromptTokens:     int64(um.PromptTokenCount),
			CompletionTokens: int64(um.CandidatesTokenCount),
			TotalTokens:      int64(um.TotalTokenCount),
		}
	}

	return response, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
