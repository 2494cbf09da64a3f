// Package store contains the two stateful stores of the application: the
// snippet collection and the settings record.
//
// OWNERSHIP:
// Each store is the sole owner of its data. Nothing else mutates the
// collection or the settings record — all writes funnel through the store's
// methods, and accessors hand out copies, never the backing slice. Construct
// one instance of each at startup and pass it down; there are no package-level
// singletons.
//
// PERSISTENCE MODEL:
// Mutate in memory, then synchronously serialize the whole thing back to
// storage under a fixed key. Every mutation method returns with the write
// already durable, so a read that follows a write always observes it.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/codepocket/internal/apperror"
	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/storage"
)

// SnippetsKey is the storage key the whole collection is serialized under, as
// one JSON array. The name predates this server — it must stay byte-identical
// so data written by earlier versions of CodePocket keeps loading.
const SnippetsKey = "CodePocket_data"

// SnippetStore owns the snippet collection.
//
// The mutex serializes access: the HTTP server handles requests concurrently,
// but every store operation is an immediate in-memory transition plus one
// storage write, so a single lock around each method keeps the
// "no concurrent writers" model without any further coordination.
type SnippetStore struct {
	storage storage.Storage
	logger  *slog.Logger

	mu       sync.Mutex
	snippets []model.Snippet

	// Injectable for tests. newID must return unique opaque strings; now
	// returns Unix milliseconds.
	newID func() string
	now   func() int64
}

// NewSnippetStore creates the store and loads the persisted collection.
//
// LOAD NEVER FAILS:
// A missing key, an unparsable blob, or an empty array all fall back to the
// built-in demo snippets. No error is surfaced — a corrupt blob degrades to
// first-run state rather than a broken app. Only an infrastructure error from
// the storage backend itself is returned.
func NewSnippetStore(st storage.Storage, logger *slog.Logger) (*SnippetStore, error) {
	s := &SnippetStore{
		storage: st,
		logger:  logger,
		newID:   func() string { return xid.New().String() },
		now:     func() int64 { return time.Now().UnixMilli() },
	}

	blob, err := st.GetItem(SnippetsKey)
	switch {
	case err == storage.ErrNoItem:
		s.snippets = demoSnippets(s.now())
		logger.Info("no snippet collection found, loaded demo snippets")
	case err != nil:
		return nil, fmt.Errorf("store: loading snippets: %w", err)
	default:
		var loaded []model.Snippet
		if uerr := json.Unmarshal(blob, &loaded); uerr != nil || len(loaded) == 0 {
			// Fail silently to demo data; the old blob stays in storage
			// untouched until the next successful save overwrites it.
			s.snippets = demoSnippets(s.now())
			logger.Warn("snippet collection unreadable, loaded demo snippets")
		} else {
			s.snippets = loaded
			logger.Info("snippet collection loaded", slog.Int("count", len(loaded)))
		}
	}

	return s, nil
}

// All returns a copy of the collection in stored order (newest-first by
// insertion).
func (s *SnippetStore) All() []model.Snippet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Snippet, len(s.snippets))
	copy(out, s.snippets)
	return out
}

// Get returns the snippet with the given id.
func (s *SnippetStore) Get(id string) (model.Snippet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, snip := range s.snippets {
		if snip.ID == id {
			return snip, nil
		}
	}
	return model.Snippet{}, apperror.NotFound("snippet", id)
}

// Save is the single create-or-update entry point.
//
// If id matches an existing record, the patch's provided fields replace that
// record's, UpdatedAt is set to now, CreatedAt and the collection order are
// untouched. If id is empty OR matches nothing, a new record is created:
// missing fields take their defaults, both timestamps are set to now, and the
// record is PREPENDED (the collection is newest-first). An unknown id falling
// through to create rather than erroring is deliberate — there is no "update
// failed" state.
func (s *SnippetStore) Save(patch model.SnippetPatch, id string) (model.Snippet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if id != "" {
		for i := range s.snippets {
			if s.snippets[i].ID != id {
				continue
			}
			applyPatch(&s.snippets[i], patch)
			s.snippets[i].UpdatedAt = now
			if err := s.persistLocked(); err != nil {
				return model.Snippet{}, err
			}
			return s.snippets[i], nil
		}
	}

	snip := model.Snippet{
		ID:        s.newID(),
		Title:     model.DefaultTitle,
		Language:  model.DefaultLanguage,
		Folder:    model.DefaultFolder,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPatch(&snip, patch)
	if snip.Title == "" {
		snip.Title = model.DefaultTitle
	}

	s.snippets = append([]model.Snippet{snip}, s.snippets...)
	if err := s.persistLocked(); err != nil {
		return model.Snippet{}, err
	}
	return snip, nil
}

// Delete removes the snippet with the given id and reports whether a record
// was actually removed. A non-existent id is a no-op, not an error. The
// confirmation gate lives one layer up (service) — by the time Delete runs,
// the user has already confirmed.
func (s *SnippetStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snippets {
		if s.snippets[i].ID != id {
			continue
		}
		s.snippets = append(s.snippets[:i], s.snippets[i+1:]...)
		if err := s.persistLocked(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// applyPatch copies the patch's non-nil fields onto dst. Nil means "not
// provided": keep whatever dst already holds.
func applyPatch(dst *model.Snippet, patch model.SnippetPatch) {
	if patch.Title != nil {
		dst.Title = *patch.Title
	}
	if patch.Description != nil {
		dst.Description = *patch.Description
	}
	if patch.Code != nil {
		dst.Code = *patch.Code
	}
	if patch.Language != nil {
		dst.Language = *patch.Language
	}
	if patch.Tags != nil {
		dst.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Folder != nil {
		dst.Folder = *patch.Folder
	}
}

// persistLocked serializes the whole collection under SnippetsKey. Caller must
// hold s.mu.
//
// An empty collection is never written: during startup an accidental empty
// state would clobber real data (or the demo fallback) in storage, so the
// write is skipped rather than persisting [].
func (s *SnippetStore) persistLocked() error {
	if len(s.snippets) == 0 {
		return nil
	}
	blob, err := json.Marshal(s.snippets)
	if err != nil {
		return fmt.Errorf("store: marshaling snippets: %w", err)
	}
	if err := s.storage.SetItem(SnippetsKey, blob); err != nil {
		return fmt.Errorf("store: persisting snippets: %w", err)
	}
	return nil
}
