package service

import (
	"encoding/json"
	"log/slog"

	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/store"
)

// SettingsService fronts the settings store. It is deliberately thin — the
// store already implements the whole contract — but it keeps the layering
// uniform (handlers never touch stores directly) and gives settings changes a
// log trail.
type SettingsService struct {
	settings *store.SettingsStore
	logger   *slog.Logger
}

func NewSettingsService(settings *store.SettingsStore, logger *slog.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

// Get returns the current settings record.
func (s *SettingsService) Get() model.Settings {
	return s.settings.Get()
}

// Update merges a partial record over the current one and persists the whole
// record.
func (s *SettingsService) Update(patch json.RawMessage) (model.Settings, error) {
	updated, err := s.settings.Update(patch)
	if err != nil {
		return model.Settings{}, err
	}
	s.logger.Info("settings updated")
	return updated, nil
}

// UpdateField replaces a single field by its JSON key.
func (s *SettingsService) UpdateField(key string, value json.RawMessage) (model.Settings, error) {
	updated, err := s.settings.UpdateField(key, value)
	if err != nil {
		return model.Settings{}, err
	}
	s.logger.Info("setting updated", slog.String("key", key))
	return updated, nil
}

// Reset restores every field to its default and persists the record.
func (s *SettingsService) Reset() (model.Settings, error) {
	return s.settings.Reset()
}
