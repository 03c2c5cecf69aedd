package apimodels

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type AgentResponse struct {
	// Name of the agent that produced the answer
	AgentName string `json:"agent_name"`

	// The generated answer text
	Response string `json:"response"`

	// "success" or "error"
	Status string `json:"status"`

	// Metadata about the generation
	Metadata *QueryMetadata `json:"metadata,omitempty"`
}

type QueryMetadata struct {
	// Time taken to route and generate
	Duration string `json:"duration"`

	// Model used for generation
	Model string `json:"model"`

	// Tokens used across routing and generation
	TokensUsed int64 `json:"tokensUsed"`
}

type AgentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AgentList struct {
	Agents []AgentInfo `json:"agents"`
}

type Health struct {
	Status          string   `json:"status"`
	Service         string   `json:"service"`
	Version         string   `json:"version"`
	Message         string   `json:"message"`
	AvailableAgents []string `json:"available_agents"`
}
