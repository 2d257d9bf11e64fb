package index

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultSummaryLength is the summary size, in characters, used when none is
// configured.
const DefaultSummaryLength = 100

const summaryEllipsis = "..."

var (
	summaryImagePattern = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	summaryLinkPattern  = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	summaryBoldPattern  = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// skippedPrefixes mark lines that never contribute to a summary: headings,
// images, message block fences and code fences.
var skippedPrefixes = []string{"#", "![", "<img", "::: ", ":::", "```"}

// ExtractSummary returns the first prose of body as a single line. Lines are
// gathered until the text is longer than length, Markdown images, links and
// bold markers are stripped, and the result is cut to length characters with
// "..." appended when it was longer. Each gathered line keeps its trailing
// separator space.
func ExtractSummary(body string, length int) string {
	if length <= 0 {
		length = DefaultSummaryLength
	}

	var builder strings.Builder
	gathered := 0
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSkippedLine(line) {
			continue
		}
		builder.WriteString(line)
		builder.WriteByte(' ')
		gathered += utf8.RuneCountInString(line) + 1
		if gathered > length {
			break
		}
	}

	summary := builder.String()
	summary = summaryImagePattern.ReplaceAllString(summary, "")
	summary = summaryLinkPattern.ReplaceAllString(summary, "$1")
	summary = summaryBoldPattern.ReplaceAllString(summary, "$1")

	return truncate(summary, length)
}

func isSkippedLine(line string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func truncate(text string, length int) string {
	if utf8.RuneCountInString(text) <= length {
		return text
	}
	runes := []rune(text)
	return string(runes[:length]) + summaryEllipsis
}
