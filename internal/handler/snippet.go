// Package handler is the HTTP layer: it parses requests, calls services, and
// writes JSON responses. No business rules live here.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/codepocket/internal/filter"
	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/service"
)

// SnippetHandler serves the snippet collection.
type SnippetHandler struct {
	service *service.SnippetService
	logger  *slog.Logger
}

func NewSnippetHandler(svc *service.SnippetService, logger *slog.Logger) *SnippetHandler {
	return &SnippetHandler{service: svc, logger: logger}
}

// HandleList returns the filtered, sorted, paged collection.
//
// HTTP: GET /api/snippets?q=...&folder=...&tag=...&lang=go&lang=python&page=2
//
// Query params map 1:1 onto the filter state: q is the search text, folder and
// tag are single-select, lang repeats for multi-select (no lang params means
// no language restriction). The response always carries allTags for the full
// collection, so the tag browser can render regardless of active filters.
func (h *SnippetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state := filter.State{
		SearchQuery:       q.Get("q"),
		SelectedFolder:    q.Get("folder"),
		SelectedTag:       q.Get("tag"),
		SelectedLanguages: q["lang"],
	}

	page := 1
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n
		}
	}

	writeJSON(w, http.StatusOK, h.service.List(state, page))
}

// HandleGet returns a single snippet.
//
// HTTP: GET /api/snippets/{id}
func (h *SnippetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snippet)
}

// saveRequest is a snippet patch plus the optional id selecting update vs
// create. The patch's pointer fields distinguish absent keys from empty values.
type saveRequest struct {
	ID string `json:"id"`
	model.SnippetPatch
}

// HandleSave creates or updates a snippet.
//
// HTTP: POST /api/snippets
// BODY: {"id": "...optional...", "title": "...", "code": "...", ...}
//
// With a matching id this merges the provided fields over the existing record
// (200); otherwise it creates a new record with defaults for omitted fields
// (201). An id that matches nothing falls through to create — the client is
// never told "update failed".
func (h *SnippetHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid snippet JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body is not a valid snippet",
		})
		return
	}

	snippet, err := h.service.Save(req.SnippetPatch, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if snippet.ID != req.ID {
		status = http.StatusCreated
	}
	writeJSON(w, status, snippet)
}

// HandleDelete removes a snippet, gated on explicit confirmation.
//
// HTTP: DELETE /api/snippets/{id}?confirm=true
//
// The frontend shows its confirm dialog and only then sends confirm=true.
// Without it the request is treated as a cancellation: nothing is deleted and
// the response says so — it is not an error. Deleting an id that doesn't
// exist is also not an error; the collection is simply unchanged.
func (h *SnippetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	deleted, err := h.service.Delete(id, confirmed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
