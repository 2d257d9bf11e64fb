package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Recognised frontmatter keys.
const (
	KeyTitle     = "title"
	KeyTopics    = "topics"
	KeyEmoji     = "emoji"
	KeyType      = "type"
	KeyPublished = "published"
)

// ParseFrontMatter splits source into decoded metadata and the Markdown body.
// Files without a frontmatter block yield empty metadata and the whole
// source as body. Keys with unexpected value types are coerced (scalars to
// strings) or dropped (non-list topics).
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, string, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return interfaces.FrontMatter{}, "", fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(raw), strings.TrimSpace(string(body)), nil
}

// BuildDocument assembles a Document from a file path and its raw content.
func BuildDocument(path, name string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FileName:     name,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

func envelopeToFrontMatter(raw map[string]any) interfaces.FrontMatter {
	fm := interfaces.FrontMatter{
		Title:     scalarString(raw[KeyTitle]),
		Topics:    stringList(raw[KeyTopics]),
		Emoji:     scalarString(raw[KeyEmoji]),
		Type:      scalarString(raw[KeyType]),
		Published: true,
		Raw:       cloneMap(raw),
	}
	if value, ok := raw[KeyPublished]; ok {
		fm.Published = truthy(value)
	}
	return fm
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any, map[string]any, map[any]any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, scalarString(item))
		}
		return out
	default:
		return nil
	}
}

// truthy follows the usual scripting notion of truth so `published: 0` or
// `published: ""` mark a draft the same way `false` does.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[any]any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func cloneMap(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
