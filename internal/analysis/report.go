package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-articles/internal/validation"
)

// Format selects the report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("analysis report: unknown format %q", value)
	}
}

// Reporter serialises Stats.
type Reporter struct {
	validate bool
}

// NewReporter returns a Reporter. With validate set, JSON reports are
// checked against the report schema before anything is written.
func NewReporter(validate bool) *Reporter {
	return &Reporter{validate: validate}
}

// Write renders stats to w in the requested format.
func (r *Reporter) Write(w io.Writer, stats *Stats, format Format) error {
	if stats == nil {
		stats = NewStats()
	}
	switch format {
	case FormatJSON:
		payload, err := EncodeJSON(stats)
		if err != nil {
			return err
		}
		if r != nil && r.validate {
			if err := validation.ValidateReport(payload); err != nil {
				return fmt.Errorf("analysis report: %w", err)
			}
		}
		_, err = w.Write(payload)
		return err
	case FormatText, "":
		return WriteText(w, stats)
	default:
		return fmt.Errorf("analysis report: unknown format %q", format)
	}
}

// EncodeJSON encodes stats with two-space indentation, leaving non-ASCII
// text and HTML characters unescaped.
func EncodeJSON(stats *Stats) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats); err != nil {
		return nil, fmt.Errorf("analysis report: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteText prints the short human summary.
func WriteText(w io.Writer, stats *Stats) error {
	_, err := fmt.Fprintf(w, "Analyzed %d articles.\nUse --json to get full data.\n", stats.Meta.TotalCount)
	return err
}
