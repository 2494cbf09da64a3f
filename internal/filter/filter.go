// Package filter derives the visible subset of the snippet collection from
// the current filter criteria.
//
// EVERYTHING HERE IS PURE:
// No state, no side effects, no caching. Each function takes the collection
// and returns a derived value; calling it twice with the same inputs yields
// identical output. The collection is small enough (hundreds of records, in
// memory) that recomputing a single O(n) pass per request beats maintaining
// any cache.
package filter

import (
	"sort"
	"strings"

	"github.com/sakif/codepocket/internal/model"
)

// State is the combination of filter criteria the presentation layer holds.
//
// All predicates are ANDed. An empty SearchQuery, empty SelectedFolder/Tag and
// an empty SelectedLanguages slice each mean "no restriction". Languages are
// multi-select: a snippet passes when its language is ANY of the selected ones
// (OR within the set).
type State struct {
	SearchQuery       string
	SelectedFolder    string
	SelectedTag       string
	SelectedLanguages []string
}

// Apply returns the subsequence of snippets satisfying every active predicate,
// preserving the input order. The result is a fresh slice; the input is never
// mutated.
//
// MATCHING RULES:
//   - search: case-insensitive substring on Title OR Description — not Code,
//     not Tags, not Language
//   - folder, tag: exact string equality
//   - language: set membership in SelectedLanguages
func Apply(snippets []model.Snippet, state State) []model.Snippet {
	query := strings.ToLower(state.SearchQuery)

	out := make([]model.Snippet, 0, len(snippets))
	for _, s := range snippets {
		if !matchesSearch(s, query) {
			continue
		}
		if state.SelectedFolder != "" && s.Folder != state.SelectedFolder {
			continue
		}
		if state.SelectedTag != "" && !containsTag(s.Tags, state.SelectedTag) {
			continue
		}
		if len(state.SelectedLanguages) > 0 && !containsLang(state.SelectedLanguages, s.Language) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s model.Snippet, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Description), query)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsLang(langs []string, lang string) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}

// AllTags returns every distinct tag across the ENTIRE collection, in
// first-seen order. It deliberately ignores the filter state — the tag browser
// shows the full vocabulary even while filters narrow the visible list.
func AllTags(snippets []model.Snippet) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, s := range snippets {
		for _, t := range s.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// Sort orders a COPY of the snippets by the settings record's sortBy/sortOrder
// fields. "date" compares CreatedAt; ties (and unknown sortBy values) keep the
// incoming order, which sort.SliceStable guarantees.
func Sort(snippets []model.Snippet, by, order string) []model.Snippet {
	out := make([]model.Snippet, len(snippets))
	copy(out, snippets)

	var less func(a, b model.Snippet) bool
	switch by {
	case "title":
		less = func(a, b model.Snippet) bool { return a.Title < b.Title }
	case "language":
		less = func(a, b model.Snippet) bool { return a.Language < b.Language }
	case "folder":
		less = func(a, b model.Snippet) bool { return a.Folder < b.Folder }
	case "date":
		less = func(a, b model.Snippet) bool { return a.CreatedAt < b.CreatedAt }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == "desc" {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Page returns the 1-based page of the given size, plus the total count before
// paging. A size <= 0 means "everything on one page". A page past the end
// returns an empty (non-nil) slice.
func Page(snippets []model.Snippet, page, size int) ([]model.Snippet, int) {
	total := len(snippets)
	if size <= 0 {
		return snippets, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= total {
		return []model.Snippet{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return snippets[start:end], total
}
