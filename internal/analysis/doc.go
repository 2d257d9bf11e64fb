// Package analysis computes corpus statistics for a directory of Markdown
// articles: per-article structural features, a heuristic content type, and
// frequency tables folded over every article.
package analysis
