package index

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-articles/internal/markdown"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Row defaults applied when a frontmatter key is absent.
const (
	DefaultTitle = "No Title"
	DefaultEmoji = "📄"
	DefaultType  = "-"
)

// Row is one rendered index entry.
type Row struct {
	Emoji     string
	Title     string
	Link      string
	Type      string
	Topics    []string
	Summary   string
	Published bool
}

// NewRow builds a row from an article's metadata, the link to it and its
// summary, filling in defaults for missing keys.
func NewRow(meta interfaces.FrontMatter, link, summary string) Row {
	row := Row{
		Emoji:     meta.Emoji,
		Title:     meta.Title,
		Link:      link,
		Type:      meta.Type,
		Topics:    append([]string(nil), meta.Topics...),
		Summary:   summary,
		Published: meta.Published,
	}
	if !meta.Has(markdown.KeyTitle) {
		row.Title = DefaultTitle
	}
	if !meta.Has(markdown.KeyEmoji) {
		row.Emoji = DefaultEmoji
	}
	if !meta.Has(markdown.KeyType) {
		row.Type = DefaultType
	}
	return row
}

// RenderRow formats row as a Markdown table line. Unpublished articles get
// the draft marker in front of their title.
func RenderRow(row Row, labels Labels) string {
	title := row.Title
	if !row.Published {
		title = labels.DraftMarker + title
	}
	return fmt.Sprintf("| %s [%s](%s) | %s | %s | %s |",
		row.Emoji, title, row.Link, row.Type, FormatTopics(row.Topics), row.Summary)
}

// FormatTopics renders topics as comma separated inline code spans.
func FormatTopics(topics []string) string {
	quoted := make([]string, 0, len(topics))
	for _, topic := range topics {
		quoted = append(quoted, "`"+topic+"`")
	}
	return strings.Join(quoted, ", ")
}

// Render returns the full index document: the header followed by the rows
// joined by newlines, without a trailing newline.
func Render(rows []Row, labels Labels) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, RenderRow(row, labels))
	}
	return labels.Header + strings.Join(lines, "\n")
}
