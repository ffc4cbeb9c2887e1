package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/pairchat/pairchat/internal/store"
)

// ReportHandler handles report submission and the admin report listing.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{store: st}
}

type createReportRequest struct {
	Reason string `json:"reason"`
}

// Create stores a user-submitted report.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64*1024))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}
	if err := validateBody(reportSchema, body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}

	var req createReportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}

	if err := h.store.CreateReport(r.Context(), req.Reason); err != nil {
		slog.Error("failed to store report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// List returns all reports, newest first. Admin only.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.store.Reports(r.Context())
	if err != nil {
		slog.Error("failed to list reports", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list reports"})
		return
	}
	if reports == nil {
		reports = []store.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}
