package analysis

import (
	"sort"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

// DefaultDeclaredType is counted when an article has no `type` key.
const DefaultDeclaredType = "tech"

// Frequencies counts occurrences per key.
type Frequencies map[string]int

// Inc adds one to key.
func (f Frequencies) Inc(key string) {
	f[key]++
}

// Entry is a single key/count pair.
type Entry struct {
	Key   string
	Count int
}

// Sorted returns the entries by descending count, then by key.
func (f Frequencies) Sorted() []Entry {
	entries := make([]Entry, 0, len(f))
	for key, count := range f {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Meta holds the corpus totals.
type Meta struct {
	TotalCount int `json:"total_count"`
	TotalChars int `json:"total_chars"`
	AvgChars   int `json:"avg_chars"`
}

// Structure keeps per-article counts in scan order; index i of every slice
// refers to the same article.
type Structure struct {
	CharCounts []int     `json:"char_counts"`
	CodeBlocks []Decimal `json:"code_blocks"`
	Images     []int     `json:"images"`
}

// Stats is the accumulator folded over every article of a run.
type Stats struct {
	Meta             Meta        `json:"meta"`
	Articles         []Article   `json:"articles"`
	Topics           Frequencies `json:"topics"`
	TopicsNormalized Frequencies `json:"topics_normalized"`
	Emojis           Frequencies `json:"emojis"`
	Types            Frequencies `json:"types"`
	ContentTypes     Frequencies `json:"content_types"`
	Versions         Frequencies `json:"versions"`
	Structure        Structure   `json:"structure"`
}

// NewStats returns an empty accumulator whose slices and tables encode as
// [] and {} rather than null.
func NewStats() *Stats {
	return &Stats{
		Articles:         []Article{},
		Topics:           Frequencies{},
		TopicsNormalized: Frequencies{},
		Emojis:           Frequencies{},
		Types:            Frequencies{},
		ContentTypes:     Frequencies{},
		Versions:         Frequencies{},
		Structure: Structure{
			CharCounts: []int{},
			CodeBlocks: []Decimal{},
			Images:     []int{},
		},
	}
}

// Add folds one article and its metadata into the accumulator. It does not
// touch Meta.TotalCount, which counts discovered files rather than parsed
// ones.
func (s *Stats) Add(article Article, meta interfaces.FrontMatter) {
	for _, topic := range meta.Topics {
		s.Topics.Inc(topic)
		s.TopicsNormalized.Inc(NormalizeTopic(topic))
	}

	if meta.Emoji != "" {
		s.Emojis.Inc(meta.Emoji)
	}

	declared := meta.Type
	if !meta.Has("type") {
		declared = DefaultDeclaredType
	}
	s.Types.Inc(declared)

	s.ContentTypes.Inc(article.ContentType)
	for _, version := range article.Versions {
		s.Versions.Inc(version)
	}

	s.Articles = append(s.Articles, article)
	s.Meta.TotalChars += article.Chars
	s.Structure.CharCounts = append(s.Structure.CharCounts, article.Chars)
	s.Structure.CodeBlocks = append(s.Structure.CodeBlocks, article.CodeBlocks)
	s.Structure.Images = append(s.Structure.Images, article.Images)
}

// Finalize computes the derived totals. AvgChars is the integer quotient of
// TotalChars by TotalCount, or 0 for an empty corpus.
func (s *Stats) Finalize() {
	if s.Meta.TotalCount > 0 {
		s.Meta.AvgChars = s.Meta.TotalChars / s.Meta.TotalCount
		return
	}
	s.Meta.AvgChars = 0
}
