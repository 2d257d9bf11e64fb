package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

var (
	h2Pattern        = regexp.MustCompile(`(?m)^##` + spaceClass)
	h3Pattern        = regexp.MustCompile(`(?m)^###` + spaceClass)
	codeFencePattern = regexp.MustCompile("(?m)^```")
	imagePattern     = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	imgTagPattern    = regexp.MustCompile(`<img` + spaceClass + `+.*?>`)
)

// Article holds the features extracted from a single file.
type Article struct {
	Filename     string   `json:"filename"`
	Title        string   `json:"title"`
	Chars        int      `json:"chars"`
	H2           int      `json:"h2"`
	H3           int      `json:"h3"`
	CodeBlocks   Decimal  `json:"code_blocks"`
	Images       int      `json:"images"`
	CodeDensity  Decimal  `json:"code_density"`
	ImageDensity Decimal  `json:"image_density"`
	Topics       []string `json:"topics"`
	Versions     []string `json:"versions"`
	ContentType  string   `json:"content_type"`
}

// Extract derives the features of one article from its metadata and body.
func Extract(filename string, meta interfaces.FrontMatter, body string) Article {
	chars := CountChars(body)
	codeBlocks := CountCodeBlocks(body)
	images := CountImages(body)

	topics := make([]string, 0, len(meta.Topics))
	for _, topic := range meta.Topics {
		topics = append(topics, NormalizeTopic(topic))
	}

	return Article{
		Filename:     filename,
		Title:        meta.Title,
		Chars:        chars,
		H2:           len(h2Pattern.FindAllStringIndex(body, -1)),
		H3:           len(h3Pattern.FindAllStringIndex(body, -1)),
		CodeBlocks:   Decimal(codeBlocks),
		Images:       images,
		CodeDensity:  Decimal(Density(codeBlocks, chars)),
		ImageDensity: Decimal(Density(float64(images), chars)),
		Topics:       topics,
		Versions:     ExtractVersions(body),
		ContentType:  ClassifyContent(meta.Title, body),
	}
}

// CountChars counts the characters of body that are not whitespace.
func CountChars(body string) int {
	count := 0
	for _, r := range body {
		if !isSpace(r) {
			count++
		}
	}
	return count
}

// isSpace also treats the ASCII separator controls 0x1c-0x1f as space so
// the count agrees with Unicode-aware regex engines.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// CountCodeBlocks counts fence lines and halves the result. An unbalanced
// fence leaves a fractional count.
func CountCodeBlocks(body string) float64 {
	return float64(len(codeFencePattern.FindAllStringIndex(body, -1))) / 2
}

// CountImages counts Markdown image references and HTML img tags.
func CountImages(body string) int {
	return len(imagePattern.FindAllStringIndex(body, -1)) + len(imgTagPattern.FindAllStringIndex(body, -1))
}

// Density returns count per 1000 characters rounded to two decimals, or 0
// for an empty article.
func Density(count float64, chars int) float64 {
	if chars <= 0 {
		return 0
	}
	return round2(count * (1000 / float64(chars)))
}

// NormalizeTopic lowercases and trims a topic label.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
