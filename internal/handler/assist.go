package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/codepocket/internal/assist"
)

// AssistHandler exposes the optional AI helper. When the assistant is not
// configured both endpoints answer 503 "unavailable" — the editor greys the
// buttons out and everything else keeps working.
type AssistHandler struct {
	assistant assist.Assistant
	logger    *slog.Logger
}

func NewAssistHandler(assistant assist.Assistant, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{assistant: assistant, logger: logger}
}

type explainRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// HandleExplain drafts a description for a snippet's code.
//
// HTTP: POST /api/assist/explain
// BODY: {"code": "...", "language": "python"}
func (h *AssistHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body is not valid JSON",
		})
		return
	}

	text, err := h.assistant.Explain(r.Context(), req.Code, req.Language)
	if err != nil {
		h.logger.Warn("assist explain failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"description": text})
}

type tagsRequest struct {
	Code string `json:"code"`
}

// HandleSuggestTags suggests keyword tags for a snippet's code.
//
// HTTP: POST /api/assist/tags
// BODY: {"code": "..."}
func (h *AssistHandler) HandleSuggestTags(w http.ResponseWriter, r *http.Request) {
	var req tagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body is not valid JSON",
		})
		return
	}

	tags, err := h.assistant.SuggestTags(r.Context(), req.Code)
	if err != nil {
		h.logger.Warn("assist tag suggestion failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}
