package model

// Settings is the single flat record of user preferences. Exactly one instance
// exists per profile; any single-field change persists the whole record.
//
// The field set mirrors the settings panel: appearance, syntax highlighting,
// editor behaviour, and snippet organization. None of the values are validated
// by the store — an out-of-range font size is accepted as-is and clamping, if
// any, is the presentation layer's problem. The zero value is NOT a usable
// record; always start from DefaultSettings().
type Settings struct {
	// Appearance
	Theme       string `json:"theme"`       // "light", "dark", "system"
	AccentColor string `json:"accentColor"` // "blue", "green", "purple", "orange", "red", "pink"
	FontSize    string `json:"fontSize"`    // "small", "medium", "large"

	// Syntax highlighting
	CodeThemeLight      string `json:"codeThemeLight"`
	CodeThemeDark       string `json:"codeThemeDark"`
	ShowLineNumbers     bool   `json:"showLineNumbers"`
	LineNumberStart     int    `json:"lineNumberStart"`
	CodeWrapping        string `json:"codeWrapping"` // "on", "off", "wordWrapColumn"
	HighlightActiveLine bool   `json:"highlightActiveLine"`
	FontSizeCode        int    `json:"fontSizeCode"`

	// Editor preferences
	EditorFontFamily string `json:"editorFontFamily"`
	EditorFontSize   int    `json:"editorFontSize"`
	TabSize          int    `json:"tabSize"`
	InsertSpaces     bool   `json:"insertSpaces"`
	WordWrap         string `json:"wordWrap"` // "on", "off", "wordWrapColumn"
	AutoSave         bool   `json:"autoSave"`
	AutoSaveInterval int    `json:"autoSaveInterval"` // seconds
	FormatOnSave     bool   `json:"formatOnSave"`
	DefaultLanguage  string `json:"defaultLanguage"`
	DefaultFolder    string `json:"defaultFolder"`
	DefaultTemplate  string `json:"defaultTemplate"`

	// Snippet organization
	SortBy             string `json:"sortBy"`    // "date", "title", "language", "folder"
	SortOrder          string `json:"sortOrder"` // "asc", "desc"
	SnippetsPerPage    int    `json:"snippetsPerPage"`
	ShowTags           bool   `json:"showTags"`
	ShowLanguage       bool   `json:"showLanguage"`
	SearchBehavior     string `json:"searchBehavior"` // "fuzzy", "exact", "regex"
	AutoTagSuggestions bool   `json:"autoTagSuggestions"`
}

// DefaultSettings returns the record every new profile starts from. It is also
// the merge base on load: keys missing from a persisted blob (for example
// fields added after the user first saved their settings) take these values, so
// old blobs pick up new fields without a migration.
func DefaultSettings() Settings {
	return Settings{
		Theme:               "system",
		AccentColor:         "blue",
		FontSize:            "medium",
		CodeThemeLight:      "vs",
		CodeThemeDark:       "vscDarkPlus",
		ShowLineNumbers:     true,
		LineNumberStart:     1,
		CodeWrapping:        "off",
		HighlightActiveLine: false,
		FontSizeCode:        12,
		EditorFontFamily:    "monaco",
		EditorFontSize:      14,
		TabSize:             2,
		InsertSpaces:        true,
		WordWrap:            "off",
		AutoSave:            true,
		AutoSaveInterval:    30,
		FormatOnSave:        false,
		DefaultLanguage:     DefaultLanguage,
		DefaultFolder:       DefaultFolder,
		DefaultTemplate:     "",
		SortBy:              "date",
		SortOrder:           "desc",
		SnippetsPerPage:     50,
		ShowTags:            true,
		ShowLanguage:        true,
		SearchBehavior:      "fuzzy",
		AutoTagSuggestions:  true,
	}
}
