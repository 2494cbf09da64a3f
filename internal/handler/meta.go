package handler

import (
	"net/http"

	"github.com/sakif/codepocket/internal/model"
)

// MetaHandler serves the fixed catalogs the pickers are built from. The
// catalogs are advisory — stored snippets may carry values outside them and
// still load fine.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// HandleMeta returns the language and folder catalogs.
//
// HTTP: GET /api/meta
func (h *MetaHandler) HandleMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"languages": model.Languages,
		"folders":   model.Folders,
	})
}
