package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/pairchat/pairchat/internal/store"
)

// FeedbackHandler handles feedback submission and the admin feedback listing.
type FeedbackHandler struct {
	store *store.Store
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: st}
}

type createFeedbackRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Create stores a feedback entry.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64*1024))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}
	if err := validateBody(feedbackSchema, body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}

	var req createFeedbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}

	if err := h.store.CreateFeedback(r.Context(), req.Name, req.Message); err != nil {
		slog.Error("failed to store feedback", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// List returns all feedback, newest first. Admin only.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.store.ListFeedback(r.Context())
	if err != nil {
		slog.Error("failed to list feedback", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list feedback"})
		return
	}
	if feedback == nil {
		feedback = []store.Feedback{}
	}
	writeJSON(w, http.StatusOK, feedback)
}
