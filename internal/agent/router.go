package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/edutechlabs/edutech-agents/api/models"
	"github.com/edutechlabs/edutech-agents/apimodels"
	"github.com/edutechlabs/edutech-agents/internal/llm"
)

// FallbackAgent answers whenever routing cannot pick a valid subagent.
const FallbackAgent = "tutor_agent"

var ErrUnknownAgent = errors.New("unknown agent")

// Router dispatches a query to a subagent: one LLM call to pick the agent,
// one to generate the answer.
type Router struct {
	provider llm.Provider
	registry *Registry
}

func New(provider llm.Provider, registry *Registry) *Router {
	return &Router{
		provider: provider,
		registry: registry,
	}
}

func (r *Router) Registry() *Registry {
	return r.registry
}

// Dispatch routes req.Query to the best subagent and returns its answer.
func (r *Router) Dispatch(ctx context.Context, req models.QueryRequest) (*apimodels.AgentResponse, error) {
	slog.Info("dispatching query", "query", req.Query, "user_id", req.UserID)
	startTime := time.Now()

	name, routeUsage := r.route(ctx, req)
	slog.Info("routed query", "agent", name)

	agent, ok := r.registry.Get(name)
	if !ok {
		// route() only returns registered names, but guard anyway
		agent, _ = r.registry.Get(FallbackAgent)
		name = FallbackAgent
	}

	answer, genUsage := agent.Generate(ctx, r.provider, req.Query, requestOptions(req))

	return &apimodels.AgentResponse{
		AgentName: name,
		Response:  answer,
		Status:    apimodels.StatusSuccess,
		Metadata: &apimodels.QueryMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: routeUsage.TotalTokens + genUsage.TotalTokens,
		},
	}, nil
}

// DispatchTo queries one subagent directly, bypassing routing.
func (r *Router) DispatchTo(ctx context.Context, name string, req models.QueryRequest) (*apimodels.AgentResponse, error) {
	agent, ok := r.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}

	startTime := time.Now()
	answer, usage := agent.Generate(ctx, r.provider, req.Query, requestOptions(req))

	return &apimodels.AgentResponse{
		AgentName: name,
		Response:  answer,
		Status:    apimodels.StatusSuccess,
		Metadata: &apimodels.QueryMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      req.Options.Model,
			TokensUsed: usage.TotalTokens,
		},
	}, nil
}

// route asks the LLM for a one-word agent name. Any routing failure or
// unrecognized answer falls back to the tutor agent.
func (r *Router) route(ctx context.Context, req models.QueryRequest) (string, llm.Usage) {
	user := fmt.Sprintf("User Query: %s\n\nBest Agent (one word only):", req.Query)

	resp, err := r.provider.Generate(ctx, RouterPrompt, user, requestOptions(req))
	if err != nil {
		slog.Warn("routing failed, using fallback agent", "error", err, "fallback", FallbackAgent)
		return FallbackAgent, llm.Usage{}
	}

	name := strings.ToLower(strings.TrimSpace(resp.Content))
	if !r.registry.routable(name) {
		slog.Warn("router returned unknown agent, using fallback", "returned", name, "fallback", FallbackAgent)
		return FallbackAgent, resp.Usage
	}
	return name, resp.Usage
}

func requestOptions(req models.QueryRequest) llm.Option {
	return func(o *llm.Options) {
		if req.Options.Model != "" {
			o.Model = req.Options.Model
		}
		if req.Options.MaxTokens != 0 {
			o.MaxTokens = req.Options.MaxTokens
		}
		if req.Options.Temperature != 0 {
			o.Temperature = req.Options.Temperature
		}
	}
}
