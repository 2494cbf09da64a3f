package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/sakif/codepocket/internal/filter"
	"github.com/sakif/codepocket/internal/model"
	"github.com/sakif/codepocket/internal/storage"
	"github.com/sakif/codepocket/internal/store"
)

// newTestService builds the full store stack over in-memory storage. The
// snippet collection starts with the three demo snippets (javascript /
// typescript / python, folders Personal / Work / Learning).
func newTestService(t *testing.T) (*SnippetService, *store.SettingsStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := storage.NewMemory()

	snippets, err := store.NewSnippetStore(st, logger)
	if err != nil {
		t.Fatalf("NewSnippetStore() error = %v", err)
	}
	settings, err := store.NewSettingsStore(st, logger)
	if err != nil {
		t.Fatalf("NewSettingsStore() error = %v", err)
	}
	return NewSnippetService(snippets, settings, logger), settings
}

func strp(s string) *string { return &s }

func TestList_ReturnsAllTagsForFullCollection(t *testing.T) {
	svc, _ := newTestService(t)

	// Filter down to a single folder; the tag vocabulary must still cover
	// every snippet in the collection.
	res := svc.List(filter.State{SelectedFolder: "Work"}, 1)
	if len(res.Snippets) != 1 {
		t.Fatalf("filtered list has %d snippets, want 1", len(res.Snippets))
	}
	if len(res.AllTags) != 9 { // 3 demo snippets x 3 tags, all distinct
		t.Errorf("AllTags has %d entries, want 9 (full collection)", len(res.AllTags))
	}
}

func TestList_HonorsSettingsSortOrder(t *testing.T) {
	svc, settings := newTestService(t)

	if _, err := settings.Update(json.RawMessage(`{"sortBy":"title","sortOrder":"asc"}`)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	res := svc.List(filter.State{}, 1)
	for i := 1; i < len(res.Snippets); i++ {
		if res.Snippets[i-1].Title > res.Snippets[i].Title {
			t.Errorf("snippets not sorted by title asc: %q before %q",
				res.Snippets[i-1].Title, res.Snippets[i].Title)
		}
	}
}

func TestList_HonorsSettingsPageSize(t *testing.T) {
	svc, settings := newTestService(t)

	if _, err := settings.Update(json.RawMessage(`{"snippetsPerPage":2}`)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	page1 := svc.List(filter.State{}, 1)
	if len(page1.Snippets) != 2 {
		t.Errorf("page 1 has %d snippets, want 2", len(page1.Snippets))
	}
	if page1.Total != 3 {
		t.Errorf("Total = %d, want 3 (match count before paging)", page1.Total)
	}

	page2 := svc.List(filter.State{}, 2)
	if len(page2.Snippets) != 1 {
		t.Errorf("page 2 has %d snippets, want 1", len(page2.Snippets))
	}
}

func TestSave_RoundTripsThroughStore(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Save(model.SnippetPatch{Title: strp("From service")}, "")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "From service" {
		t.Errorf("Title = %q, want %q", got.Title, "From service")
	}
}

func TestDelete_UnconfirmedIsCancellation(t *testing.T) {
	svc, _ := newTestService(t)

	target := svc.List(filter.State{}, 1).Snippets[0]

	deleted, err := svc.Delete(target.ID, false)
	if err != nil {
		t.Fatalf("Delete() error = %v (cancellation must not be an error)", err)
	}
	if deleted {
		t.Error("Delete() = true without confirmation")
	}

	// No mutation happened.
	if _, err := svc.Get(target.ID); err != nil {
		t.Errorf("snippet gone after cancelled delete: %v", err)
	}
}

func TestDelete_Confirmed(t *testing.T) {
	svc, _ := newTestService(t)

	target := svc.List(filter.State{}, 1).Snippets[0]

	deleted, err := svc.Delete(target.ID, true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Error("Delete() = false, want true")
	}
	if _, err := svc.Get(target.ID); err == nil {
		t.Error("snippet still present after confirmed delete")
	}
}

func TestDelete_ConfirmedUnknownIDIsQuietNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	deleted, err := svc.Delete("no-such-id", true)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted {
		t.Error("Delete() = true for unknown id")
	}
}
