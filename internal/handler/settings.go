package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/codepocket/internal/service"
)

// SettingsHandler serves the single settings record.
type SettingsHandler struct {
	service *service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(svc *service.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{service: svc, logger: logger}
}

// HandleGet returns the full settings record.
//
// HTTP: GET /api/settings
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Get())
}

// HandleUpdate merges a partial record over the current settings.
//
// HTTP: PATCH /api/settings
// BODY: {"theme": "dark", "tabSize": 4}
//
// The body is passed through as raw JSON — the store does the merge, ignoring
// unknown keys. The response is the full record after the merge.
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "could not read request body",
		})
		return
	}

	updated, err := h.service.Update(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleUpdateField replaces one field by its JSON key.
//
// HTTP: PUT /api/settings/{key}
// BODY: the new value as a JSON literal, e.g. `"dark"` or `4` or `true`
func (h *SettingsHandler) HandleUpdateField(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := io.ReadAll(r.Body)
	if err != nil || len(value) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be the new value as JSON",
		})
		return
	}

	updated, err := h.service.UpdateField(key, json.RawMessage(value))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleReset restores every setting to its default.
//
// HTTP: POST /api/settings/reset
func (h *SettingsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	reset, err := h.service.Reset()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reset)
}
