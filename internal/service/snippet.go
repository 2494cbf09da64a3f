// Package service contains the business logic layer.
//
// Handlers parse HTTP and delegate here; this layer orchestrates the stores
// and the filter engine and logs business events. It knows nothing about HTTP
// — methods accept and return plain values, and failures are domain errors
// from internal/apperror.
package service

import (
	"log/slog"

	"github.com/sakif/codepocket/internal/filter"
	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/store"
)

// SnippetService answers snippet queries and funnels all snippet mutation.
//
// It reads the settings store on every list call so sort order and page size
// changes take effect immediately — the settings record is the source of
// truth, not a copy captured at startup.
type SnippetService struct {
	snippets *store.SnippetStore
	settings *store.SettingsStore
	logger   *slog.Logger
}

// NewSnippetService wires the service to its stores.
func NewSnippetService(snippets *store.SnippetStore, settings *store.SettingsStore, logger *slog.Logger) *SnippetService {
	return &SnippetService{
		snippets: snippets,
		settings: settings,
		logger:   logger,
	}
}

// ListResult is what a snippet-list view renders from.
//
// AllTags always covers the FULL collection — the tag browser must not shrink
// as filters narrow Snippets. Total is the match count before paging.
type ListResult struct {
	Snippets []model.Snippet `json:"snippets"`
	AllTags  []string        `json:"allTags"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
}

// List derives the visible subset: filter (AND of the active predicates, OR
// across selected languages), then a stable sort per the settings record, then
// the requested page. The stored collection order is never touched — sorting
// happens on a copy.
func (s *SnippetService) List(state filter.State, page int) ListResult {
	if page < 1 {
		page = 1
	}
	cfg := s.settings.Get()

	all := s.snippets.All()
	matched := filter.Apply(all, state)
	sorted := filter.Sort(matched, cfg.SortBy, cfg.SortOrder)
	paged, total := filter.Page(sorted, page, cfg.SnippetsPerPage)

	return ListResult{
		Snippets: paged,
		AllTags:  filter.AllTags(all),
		Total:    total,
		Page:     page,
	}
}

// Get returns a single snippet by id.
func (s *SnippetService) Get(id string) (model.Snippet, error) {
	return s.snippets.Get(id)
}

// Save creates or updates a snippet. An empty id — or an id that matches no
// record — creates a new one with defaults for any omitted field; a matching
// id merges the provided fields over the existing record. Either way the
// collection is re-persisted before Save returns.
func (s *SnippetService) Save(patch model.SnippetPatch, id string) (model.Snippet, error) {
	snip, err := s.snippets.Save(patch, id)
	if err != nil {
		s.logger.Error("failed to save snippet", slog.String("error", err.Error()))
		return model.Snippet{}, err
	}

	s.logger.Info("snippet saved",
		slog.String("id", snip.ID),
		slog.String("title", snip.Title),
		slog.Bool("created", snip.CreatedAt == snip.UpdatedAt),
	)
	return snip, nil
}

// Delete removes a snippet, gated on confirmation.
//
// An unconfirmed delete is a user cancellation, NOT an error: no mutation
// happens and the first return value is false. A confirmed delete of an id
// that doesn't exist is likewise a quiet no-op — there is nothing useful for
// the caller to do about it.
func (s *SnippetService) Delete(id string, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("snippet delete cancelled", slog.String("id", id))
		return false, nil
	}

	deleted, err := s.snippets.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete snippet",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return false, err
	}
	if deleted {
		s.logger.Info("snippet deleted", slog.String("id", id))
	}
	return deleted, nil
}
