package store

import (
	"encoding/json"
	"testing"

	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/storage"
)

func newTestSettingsStore(t *testing.T, st storage.Storage) *SettingsStore {
	t.Helper()
	s, err := NewSettingsStore(st, discardLogger())
	if err != nil {
		t.Fatalf("NewSettingsStore() error = %v", err)
	}
	return s
}

func TestSettingsLoad_AbsentUsesDefaults(t *testing.T) {
	s := newTestSettingsStore(t, storage.NewMemory())

	if got, want := s.Get(), model.DefaultSettings(); got != want {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestSettingsLoad_CorruptBlobUsesDefaults(t *testing.T) {
	st := storage.NewMemory()
	if err := st.SetItem(SettingsKey, []byte("{broken")); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	s := newTestSettingsStore(t, st)
	if got, want := s.Get(), model.DefaultSettings(); got != want {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestSettingsLoad_MergesPersistedOverDefaults(t *testing.T) {
	// A blob written by an older version: it knows about theme and tabSize
	// but none of the fields added since. Known keys keep their saved
	// values; everything else takes its default.
	st := storage.NewMemory()
	if err := st.SetItem(SettingsKey, []byte(`{"theme":"dark","tabSize":8}`)); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	s := newTestSettingsStore(t, st)
	got := s.Get()

	if got.Theme != "dark" {
		t.Errorf("Theme = %q, want persisted %q", got.Theme, "dark")
	}
	if got.TabSize != 8 {
		t.Errorf("TabSize = %d, want persisted 8", got.TabSize)
	}
	defaults := model.DefaultSettings()
	if got.SortBy != defaults.SortBy || got.SnippetsPerPage != defaults.SnippetsPerPage {
		t.Errorf("missing keys did not take defaults: SortBy=%q SnippetsPerPage=%d",
			got.SortBy, got.SnippetsPerPage)
	}
}

func TestSettingsUpdate_MergesAndPersistsFullRecord(t *testing.T) {
	st := storage.NewMemory()
	s := newTestSettingsStore(t, st)

	updated, err := s.Update(json.RawMessage(`{"theme":"light","snippetsPerPage":10}`))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Theme != "light" || updated.SnippetsPerPage != 10 {
		t.Errorf("Update() = %+v, want patched fields applied", updated)
	}
	// Untouched fields survive.
	if updated.AccentColor != "blue" {
		t.Errorf("AccentColor = %q, want untouched default", updated.AccentColor)
	}

	// The persisted blob is the FULL record, not just the patch.
	blob, err := st.GetItem(SettingsKey)
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	var persisted model.Settings
	if err := json.Unmarshal(blob, &persisted); err != nil {
		t.Fatalf("persisted blob unreadable: %v", err)
	}
	if persisted != updated {
		t.Errorf("persisted record %+v differs from in-memory %+v", persisted, updated)
	}
}

func TestSettingsUpdate_UnknownKeysIgnored(t *testing.T) {
	s := newTestSettingsStore(t, storage.NewMemory())

	updated, err := s.Update(json.RawMessage(`{"noSuchSetting":true,"theme":"dark"}`))
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", updated.Theme, "dark")
	}
}

func TestSettingsUpdate_InvalidJSONLeavesRecordUntouched(t *testing.T) {
	s := newTestSettingsStore(t, storage.NewMemory())
	before := s.Get()

	if _, err := s.Update(json.RawMessage(`{nope`)); err == nil {
		t.Fatal("Update() accepted invalid JSON")
	}
	if got := s.Get(); got != before {
		t.Errorf("record changed after failed update: %+v", got)
	}
}

func TestSettingsUpdateField(t *testing.T) {
	s := newTestSettingsStore(t, storage.NewMemory())

	updated, err := s.UpdateField("editorFontSize", json.RawMessage(`18`))
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if updated.EditorFontSize != 18 {
		t.Errorf("EditorFontSize = %d, want 18", updated.EditorFontSize)
	}

	// No range validation: an absurd value is stored as-is.
	updated, err = s.UpdateField("editorFontSize", json.RawMessage(`900`))
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if updated.EditorFontSize != 900 {
		t.Errorf("EditorFontSize = %d, want 900 accepted as-is", updated.EditorFontSize)
	}
}

func TestSettingsReset(t *testing.T) {
	st := storage.NewMemory()
	s := newTestSettingsStore(t, st)

	if _, err := s.Update(json.RawMessage(`{"theme":"dark","tabSize":8}`)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	reset, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if reset != model.DefaultSettings() {
		t.Errorf("Reset() = %+v, want defaults", reset)
	}

	// Reset persists too — a reload sees defaults, not the old record.
	reloaded := newTestSettingsStore(t, st)
	if got := reloaded.Get(); got != model.DefaultSettings() {
		t.Errorf("reloaded record = %+v, want defaults", got)
	}
}
