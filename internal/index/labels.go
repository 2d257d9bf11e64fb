package index

import (
	"fmt"
	"strings"
)

// Supported locales for the index chrome.
const (
	LocaleEnglish  = "en"
	LocaleJapanese = "ja"
)

// Labels is the fixed text surrounding the generated rows.
type Labels struct {
	Header      string
	DraftMarker string
}

var localeLabels = map[string]Labels{
	LocaleEnglish: {
		Header: "# Article Index\n\n" +
			"Overview of every article. Regenerate it with `article-index`.\n\n" +
			"| Title | Type | Topics | Summary |\n" +
			"| --- | --- | --- | --- |\n",
		DraftMarker: "[Draft] ",
	},
	LocaleJapanese: {
		Header: "# 記事一覧インデックス\n\n" +
			"全記事の概要一覧です。`article-index` で更新できます。\n\n" +
			"| タイトル | Type | Topics | 概要 |\n" +
			"| --- | --- | --- | --- |\n",
		DraftMarker: "[下書き] ",
	},
}

// LabelsFor returns the labels of locale. An empty locale selects English.
func LabelsFor(locale string) (Labels, error) {
	key := strings.ToLower(strings.TrimSpace(locale))
	if key == "" {
		key = LocaleEnglish
	}
	labels, ok := localeLabels[key]
	if !ok {
		return Labels{}, fmt.Errorf("index: unknown locale %q", locale)
	}
	return labels, nil
}
