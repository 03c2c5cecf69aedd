// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/edutechlabs/edutech-agents/internal/agent"
	"github.com/edutechlabs/edutech-agents/internal/config"
	"github.com/edutechlabs/edutech-agents/internal/llm"
	"github.com/edutechlabs/edutech-agents/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.New(context.Background(), &cfg.LLM)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	agents := agent.New(provider, agent.NewRegistry())

	srv := server.New(*cfg, agents)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
