package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edutechlabs/edutech-agents/api/models"
	"github.com/edutechlabs/edutech-agents/apimodels"
	"github.com/edutechlabs/edutech-agents/internal/agent"
)

const (
	serviceName    = "EduTech Multi-Agent Platform"
	serviceVersion = "1.0.0"
)

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	slog.Debug("Received query request", "request", req)

	result, err := s.agents.Dispatch(r.Context(), req)
	if err != nil {
		slog.Error("Query dispatch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	agentName := chi.URLParam(r, "agentName")

	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result, err := s.agents.DispatchTo(r.Context(), agentName, req)
	if err != nil {
		if errors.Is(err, agent.ErrUnknownAgent) {
			writeJSON(w, http.StatusNotFound, apimodels.AgentResponse{
				AgentName: "error",
				Response:  fmt.Sprintf("Agent '%s' not found", agentName),
				Status:    apimodels.StatusError,
			})
			return
		}
		slog.Error("Agent dispatch failed", "agent", agentName, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.AgentList{
		Agents: s.agents.Registry().Infos(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.Health{
		Status:          "active",
		Service:         serviceName,
		Version:         serviceVersion,
		Message:         "Backend is running! Open /ui/ in your browser to use the UI.",
		AvailableAgents: s.agents.Registry().Names(),
	})
}

func errorResponse(err error) apimodels.AgentResponse {
	return apimodels.AgentResponse{
		AgentName: "error",
		Response:  fmt.Sprintf("An error occurred: %v", err),
		Status:    apimodels.StatusError,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
