package models

type QueryRequest struct {
	// Query is the natural language query to process
	Query string `json:"query"`

	// UserID identifies the requesting user; the backend treats it as opaque
	UserID string `json:"user_id,omitempty"`

	// Optional parameters to control generation behavior
	Options QueryOptions `json:"options,omitempty"`
}

type QueryOptions struct {
	// Model overrides the configured LLM model (e.g. "gemini-1.5-flash")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`
}
