// Package markdown loads article files from disk: it lists the Markdown files
// of a directory, splits frontmatter from body, and renders Markdown to HTML
// with goldmark for previews.
package markdown
