package interfaces

import "time"

// MarkdownParser converts Markdown into HTML. The index job uses it to
// render an optional HTML preview of the generated index.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions toggles goldmark extensions and renderer behaviour.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// Document is a single article file: its decoded frontmatter and the
// Markdown body that follows it.
type Document struct {
	FilePath     string
	FileName     string
	FrontMatter  FrontMatter
	Body         string
	LastModified time.Time
}

// FrontMatter holds the article metadata keys both jobs understand. Values
// of the wrong shape in the source file are coerced or dropped while
// decoding, never reported. Raw keeps every decoded key.
type FrontMatter struct {
	Title     string         `json:"title"`
	Topics    []string       `json:"topics"`
	Emoji     string         `json:"emoji"`
	Type      string         `json:"type"`
	Published bool           `json:"published"`
	Raw       map[string]any `json:"raw"`
}

// Has reports whether key was present in the source frontmatter.
func (fm FrontMatter) Has(key string) bool {
	if fm.Raw == nil {
		return false
	}
	_, ok := fm.Raw[key]
	return ok
}
