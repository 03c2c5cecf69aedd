package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edutechlabs/edutech-agents/apimodels"
	"github.com/edutechlabs/edutech-agents/internal/llm"
)

// Agent is a single named subagent: a prompt template with a {query} slot
// rendered against the configured LLM provider.
type Agent struct {
	Name        string
	Description string

	prompt string
}

// Generate renders the agent's prompt for the given query and asks the
// provider for an answer. Provider failures are not propagated: the agent
// answers with an apology instead, so a broken upstream never breaks the
// response envelope.
func (a *Agent) Generate(ctx context.Context, provider llm.Provider, query string, opts ...llm.Option) (string, llm.Usage) {
	prompt := strings.ReplaceAll(a.prompt, queryslot, query)

	resp, err := provider.Generate(ctx, "", prompt, opts...)
	if err != nil {
		slog.Error("agent generation failed", "agent", a.Name, "error", err)
		return fmt.Sprintf("I apologize, but I encountered an error: %v", err), llm.Usage{}
	}
	return resp.Content, resp.Usage
}

// Registry holds the set of known subagents.
type Registry struct {
	agents map[string]*Agent
}

// NewRegistry builds the default agent set.
func NewRegistry() *Registry {
	agents := make(map[string]*Agent, len(agentPrompts))
	for name, prompt := range agentPrompts {
		agents[name] = &Agent{
			Name:        name,
			Description: agentDescriptions[name],
			prompt:      prompt,
		}
	}
	return &Registry{agents: agents}
}

func (r *Registry) Get(name string) (*Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

// Names lists all agents in a stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(agentOrder))
	for _, name := range agentOrder {
		if _, ok := r.agents[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Infos lists all agents with their descriptions, for the /agents endpoint.
func (r *Registry) Infos() []apimodels.AgentInfo {
	infos := make([]apimodels.AgentInfo, 0, len(agentOrder))
	for _, name := range r.Names() {
		infos = append(infos, apimodels.AgentInfo{
			Name:        name,
			Description: r.agents[name].Description,
		})
	}
	return infos
}

func (r *Registry) routable(name string) bool {
	for _, n := range routableAgents {
		if n == name {
			return true
		}
	}
	return false
}
