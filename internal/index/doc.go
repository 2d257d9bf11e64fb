// Package index builds a Markdown table of contents for an article
// directory: one row per article, newest first, with a short plain text
// summary taken from the body.
package index
