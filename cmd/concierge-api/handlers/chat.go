// Package handlers provides HTTP handlers for the concierge API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/pipeline"
)

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	logger  *observability.Logger
	service *pipeline.Service
}

// NewChatHandler creates a chat handler.
func NewChatHandler(logger *observability.Logger, service *pipeline.Service) *ChatHandler {
	return &ChatHandler{logger: logger, service: service}
}

// Ask handles POST /api/ask.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.service.Ask(r.Context(), req)
	if err != nil {
		// The reply already carries the apology body.
		writeJSON(w, http.StatusInternalServerError, reply)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
