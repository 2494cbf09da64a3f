package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/codepocket/internal/model"
)

// testCollection mirrors the two-record scenario the filter contract is
// specified against, plus a third record to make ordering visible.
func testCollection() []model.Snippet {
	return []model.Snippet{
		{ID: "1", Title: "Foo", Description: "first", Folder: "Work", Language: "python", Tags: []string{"x"}},
		{ID: "2", Title: "Bar", Description: "second", Folder: "Personal", Language: "javascript", Tags: []string{"y"}},
		{ID: "3", Title: "Baz utilities", Description: "shared helpers", Folder: "Work", Language: "go", Tags: []string{"x", "z"}},
	}
}

func ids(snippets []model.Snippet) []string {
	out := make([]string, len(snippets))
	for i, s := range snippets {
		out[i] = s.ID
	}
	return out
}

func TestApply_NoActivePredicatesReturnsEverything(t *testing.T) {
	got := Apply(testCollection(), State{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestApply_FolderEquality(t *testing.T) {
	got := Apply(testCollection(), State{SelectedFolder: "Work"})
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestApply_LanguageMultiSelectIsOR(t *testing.T) {
	// Two selected languages: a snippet matches if its language is EITHER.
	got := Apply(testCollection(), State{SelectedLanguages: []string{"python", "javascript"}})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestApply_EmptyLanguageSetMeansNoRestriction(t *testing.T) {
	got := Apply(testCollection(), State{SelectedLanguages: []string{}})
	assert.Len(t, got, 3)
}

func TestApply_SearchIsCaseInsensitiveOnTitleAndDescription(t *testing.T) {
	coll := testCollection()

	assert.Equal(t, []string{"1"}, ids(Apply(coll, State{SearchQuery: "FOO"})), "title match")
	assert.Equal(t, []string{"3"}, ids(Apply(coll, State{SearchQuery: "Helpers"})), "description match")
}

func TestApply_SearchDoesNotMatchCodeTagsOrLanguage(t *testing.T) {
	coll := []model.Snippet{
		{ID: "1", Title: "a", Description: "b", Code: "needle", Language: "needle", Tags: []string{"needle"}},
	}
	assert.Empty(t, Apply(coll, State{SearchQuery: "needle"}))
}

func TestApply_TagExactMatch(t *testing.T) {
	got := Apply(testCollection(), State{SelectedTag: "x"})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	// Substring of a tag is not a match.
	assert.Empty(t, Apply(testCollection(), State{SelectedTag: "xy"}))
}

func TestApply_PredicatesCombineWithAND(t *testing.T) {
	got := Apply(testCollection(), State{
		SelectedFolder: "Work",
		SelectedTag:    "x",
		SearchQuery:    "baz",
	})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestApply_PreservesOrderAndIsSubsequence(t *testing.T) {
	coll := testCollection()
	got := Apply(coll, State{SelectedTag: "x"})

	// Result positions must appear in the same relative order as the input.
	last := -1
	for _, g := range got {
		pos := -1
		for i, c := range coll {
			if c.ID == g.ID {
				pos = i
				break
			}
		}
		require.Greater(t, pos, last, "result out of input order")
		last = pos
	}
}

func TestApply_Idempotent(t *testing.T) {
	state := State{SearchQuery: "f", SelectedFolder: "Work"}
	first := Apply(testCollection(), state)
	second := Apply(testCollection(), state)
	assert.Equal(t, first, second)
}

func TestAllTags_FirstSeenOrderOverFullCollection(t *testing.T) {
	got := AllTags(testCollection())
	assert.Equal(t, []string{"x", "y", "z"}, got)
}

func TestAllTags_IgnoresFilters(t *testing.T) {
	coll := testCollection()

	// Narrowing the visible list must not shrink the tag vocabulary: AllTags
	// takes the full collection regardless of any filter state.
	filtered := Apply(coll, State{SelectedFolder: "Personal"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, []string{"x", "y", "z"}, AllTags(coll))
}

func TestSort_ByTitleAscAndDesc(t *testing.T) {
	coll := testCollection()

	asc := Sort(coll, "title", "asc")
	assert.Equal(t, []string{"2", "3", "1"}, ids(asc))

	desc := Sort(coll, "title", "desc")
	assert.Equal(t, []string{"1", "3", "2"}, ids(desc))

	// Input untouched — Sort works on a copy.
	assert.Equal(t, []string{"1", "2", "3"}, ids(coll))
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	got := Sort(testCollection(), "nonsense", "asc")
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestSort_ByDate(t *testing.T) {
	coll := []model.Snippet{
		{ID: "old", CreatedAt: 100},
		{ID: "new", CreatedAt: 300},
		{ID: "mid", CreatedAt: 200},
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids(Sort(coll, "date", "desc")))
}

func TestPage(t *testing.T) {
	coll := testCollection()

	got, total := Page(coll, 1, 2)
	assert.Equal(t, []string{"1", "2"}, ids(got))
	assert.Equal(t, 3, total)

	got, _ = Page(coll, 2, 2)
	assert.Equal(t, []string{"3"}, ids(got))

	// Past the end: empty but non-nil, total intact.
	got, total = Page(coll, 9, 2)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 3, total)

	// size <= 0 disables paging.
	got, _ = Page(coll, 1, 0)
	assert.Len(t, got, 3)
}
