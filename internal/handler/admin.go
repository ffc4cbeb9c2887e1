package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pairchat/pairchat/internal/store"
)

// AdminHandler handles the admin surface: login, maintenance flags and the
// word blacklist. None of this sits on the pairing hot path; the engine sees
// blacklist changes through the cached source.
type AdminHandler struct {
	store *store.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// CheckPassword reports whether the presented password matches the stored
// admin record. Used by the AdminAuth middleware.
func (h *AdminHandler) CheckPassword(r *http.Request, password string) bool {
	admin, err := h.store.Admin(r.Context())
	if err != nil {
		slog.Error("failed to load admin record", "error", err)
		return false
	}
	return admin != nil && admin.Password == password
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login validates the admin password for the dashboard.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}
	if !h.CheckPassword(r, req.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Maintenance returns the public maintenance flags. Not authenticated: the
// client UI polls this before opening a chat connection.
func (h *AdminHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	admin, err := h.store.Admin(r.Context())
	if err != nil {
		slog.Error("failed to load admin record", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load maintenance state"})
		return
	}

	mode, message := "off", ""
	if admin != nil {
		mode, message = admin.MaintenanceMode, admin.MaintenanceMessage
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"maintenanceMode":    mode,
		"maintenanceMessage": message,
	})
}

type updateMaintenanceRequest struct {
	Mode    string `json:"mode"`
	Message string `json:"message"`
}

// UpdateMaintenance sets the maintenance flags and records a history entry.
func (h *AdminHandler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req updateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}
	if req.Mode != "on" && req.Mode != "off" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "mode must be on or off"})
		return
	}

	if err := h.store.UpdateMaintenance(r.Context(), req.Mode, req.Message); err != nil {
		slog.Error("failed to update maintenance", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// MaintenanceHistory returns past maintenance changes, newest first.
func (h *AdminHandler) MaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.MaintenanceHistory(r.Context())
	if err != nil {
		slog.Error("failed to list maintenance history", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list history"})
		return
	}
	if history == nil {
		history = []store.MaintenanceEvent{}
	}
	writeJSON(w, http.StatusOK, history)
}

// Blacklist returns the current word blacklist.
func (h *AdminHandler) Blacklist(w http.ResponseWriter, r *http.Request) {
	admin, err := h.store.Admin(r.Context())
	if err != nil {
		slog.Error("failed to load admin record", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load blacklist"})
		return
	}

	var words []string
	if admin != nil && admin.WordBlacklist != "" {
		words = strings.Split(admin.WordBlacklist, ",")
		for i := range words {
			words[i] = strings.TrimSpace(words[i])
		}
	}
	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": words})
}

type updateBlacklistRequest struct {
	Words []string `json:"words"`
}

// UpdateBlacklist replaces the word blacklist. Takes effect on relays within
// the blacklist cache TTL.
func (h *AdminHandler) UpdateBlacklist(w http.ResponseWriter, r *http.Request) {
	var req updateBlacklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		return
	}

	for i := range req.Words {
		req.Words[i] = strings.TrimSpace(req.Words[i])
	}
	if err := h.store.UpdateWordBlacklist(r.Context(), strings.Join(req.Words, ",")); err != nil {
		slog.Error("failed to update blacklist", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
