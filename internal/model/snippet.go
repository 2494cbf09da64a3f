// Package model defines the data structures shared across the application.
// Structs here are plain data carriers — no behaviour beyond small helpers.
// The `json:"..."` struct tags control how encoding/json serializes each field,
// which matters because the persisted storage blob IS the JSON form of these
// structs (see internal/store).
package model

// Snippet is a single saved code sample with its metadata.
//
// TIMESTAMPS AS MILLISECONDS:
// CreatedAt/UpdatedAt are integer milliseconds since the Unix epoch, not
// time.Time. The persisted blob stores them as plain JSON numbers, and keeping
// the Go type identical to the wire type means a round trip through storage
// never reformats a record. CreatedAt is set once and never modified;
// UpdatedAt is reset on every save. The invariant CreatedAt <= UpdatedAt holds
// for the lifetime of the record.
type Snippet struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Folder      string   `json:"folder"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// SnippetPatch is a partial snippet used by the save operation.
//
// WHY POINTER FIELDS?
// A save must distinguish "field not provided" (keep the existing value, or
// apply a default on create) from "field explicitly set to empty". JSON
// decoding leaves a pointer nil when the key is absent, which gives us exactly
// that three-way distinction. A plain string field can't tell "" from missing.
type SnippetPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Language    *string   `json:"language"`
	Tags        *[]string `json:"tags"`
	Folder      *string   `json:"folder"`
}

// Defaults applied when a field is omitted on create.
const (
	DefaultTitle    = "Untitled"
	DefaultLanguage = "javascript"
	DefaultFolder   = "Personal"
)

// Languages is the fixed catalog of language names offered by the UI pickers.
// Snippet.Language is drawn from this list but deliberately NOT validated
// against it — records with unknown languages (e.g. from older versions) must
// keep loading.
var Languages = []string{
	"javascript",
	"typescript",
	"python",
	"go",
	"rust",
	"java",
	"cpp",
	"html",
	"css",
	"json",
	"markdown",
	"sql",
	"shell",
}

// Folders is the fixed catalog of single-level organization folders.
// Like Languages, it feeds pickers only; Snippet.Folder is not validated.
var Folders = []string{
	"Personal",
	"Work",
	"Open Source",
	"Learning",
	"Archived",
}
