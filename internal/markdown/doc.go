// Package markdown wraps goldmark for article rendering. The Engine parses
// Markdown into a goldmark tree and renders it back to HTML with a custom
// fenced code block renderer that handles syntax highlighting, Mermaid
// diagrams and CSV tables.
package markdown
