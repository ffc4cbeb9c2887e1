package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pairchat/pairchat/internal/chat"
	"github.com/pairchat/pairchat/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store  *store.Store
	engine *chat.Engine
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store, engine *chat.Engine) *HealthHandler {
	return &HealthHandler{store: st, engine: engine}
}

// Health is a simple liveness probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready is a readiness probe that checks the database and reports basic
// matchmaking stats.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":   "ready",
		"database": "connected",
		"online":   h.engine.Size(),
		"waiting":  h.engine.Waiting(),
	}
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		response["status"] = "not_ready"
		response["database"] = "disconnected"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, response)
}
