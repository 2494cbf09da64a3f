package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sakif/codepocket/internal/apperror"
	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/storage"
)

// SettingsKey is the storage key the settings record is serialized under, as
// one JSON object, always written in full. Like SnippetsKey, the name is part
// of the on-disk contract.
const SettingsKey = "CodePocket_settings"

// SettingsStore owns the single settings record.
type SettingsStore struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.Mutex
	current model.Settings
}

// NewSettingsStore creates the store and loads the persisted record.
//
// FORWARD-COMPATIBLE MERGE:
// The persisted blob is unmarshaled OVER a record pre-filled with defaults.
// json.Unmarshal only touches fields present in the blob, so keys written by
// an older version keep their saved values and fields introduced since then
// silently acquire their defaults. A parse failure or absent key means
// defaults outright — never an error to the caller.
func NewSettingsStore(st storage.Storage, logger *slog.Logger) (*SettingsStore, error) {
	s := &SettingsStore{
		storage: st,
		logger:  logger,
		current: model.DefaultSettings(),
	}

	blob, err := st.GetItem(SettingsKey)
	switch {
	case err == storage.ErrNoItem:
		logger.Info("no settings found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("store: loading settings: %w", err)
	default:
		merged := model.DefaultSettings()
		if uerr := json.Unmarshal(blob, &merged); uerr != nil {
			logger.Warn("settings unreadable, using defaults")
		} else {
			s.current = merged
			logger.Info("settings loaded")
		}
	}

	return s, nil
}

// Get returns the current record.
func (s *SettingsStore) Get() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges a partial record (raw JSON object) over the current one in a
// single step, then persists the full record.
//
// The merge reuses json.Unmarshal over a copy of the current record — exactly
// the load-time defaults-merge, with "current" as the base instead of the
// defaults. Unknown keys are ignored; no field values are validated (an
// out-of-range font size is stored as-is).
func (s *SettingsStore) Update(patch json.RawMessage) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.current
	if err := json.Unmarshal(patch, &merged); err != nil {
		return model.Settings{}, apperror.ValidationFailed("settings", "settings patch is not a valid JSON object")
	}

	s.current = merged
	if err := s.persistLocked(); err != nil {
		return model.Settings{}, err
	}
	return s.current, nil
}

// UpdateField replaces a single field by key, leaving all others untouched.
// It is Update with a one-key patch.
func (s *SettingsStore) UpdateField(key string, value json.RawMessage) (model.Settings, error) {
	patch, err := json.Marshal(map[string]json.RawMessage{key: value})
	if err != nil {
		return model.Settings{}, apperror.ValidationFailed(key, "setting value is not valid JSON")
	}
	return s.Update(patch)
}

// Reset restores the entire record to defaults and persists it.
func (s *SettingsStore) Reset() (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = model.DefaultSettings()
	if err := s.persistLocked(); err != nil {
		return model.Settings{}, err
	}
	s.logger.Info("settings reset to defaults")
	return s.current, nil
}

// persistLocked writes the full record under SettingsKey. Caller must hold
// s.mu. Unlike the snippet collection there is no empty-state guard — the
// record always has every field.
func (s *SettingsStore) persistLocked() error {
	blob, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("store: marshaling settings: %w", err)
	}
	if err := s.storage.SetItem(SettingsKey, blob); err != nil {
		return fmt.Errorf("store: persisting settings: %w", err)
	}
	return nil
}
