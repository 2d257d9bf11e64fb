package analysis

import "strings"

// Content type labels.
const (
	ContentTroubleshooting = "troubleshooting"
	ContentComparison      = "comparison"
	ContentTutorial        = "tutorial"
	ContentExplanation     = "explanation"
)

type contentRule struct {
	label    string
	keywords []string
}

// Rules are checked in order and the first hit wins; the keyword sets
// overlap, so the order is significant.
var contentRules = []contentRule{
	{ContentTroubleshooting, []string{"error", "exception", "failed", "エラー", "解決", "できない", "動かない"}},
	{ContentComparison, []string{"vs", "比較", "違い", "どっち", "compare"}},
	{ContentTutorial, []string{"tutorial", "how to", "手順", "入門", "始め方", "guide"}},
}

// ClassifyContent infers a content type from keywords in the title and body.
// Matching is case-insensitive substring matching.
func ClassifyContent(title, body string) string {
	text := strings.ToLower(title + "\n" + body)
	for _, rule := range contentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.label
			}
		}
	}
	return ContentExplanation
}
