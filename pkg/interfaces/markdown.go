package interfaces

import (
	"io"

	"github.com/yuin/goldmark/ast"
)

// MarkdownParser turns Markdown source into a syntax tree. Text nodes in the
// returned tree reference segments of the supplied source, so callers must
// keep the source alongside the tree.
type MarkdownParser interface {
	Parse(source []byte) ast.Node
}

// MarkdownRenderer writes the HTML representation of a parsed tree.
type MarkdownRenderer interface {
	Render(w io.Writer, source []byte, node ast.Node) error
}

// Highlighter renders source code as highlighted HTML for the named language.
// Implementations return an error when the language is not recognised so
// callers can fall back to escaped output.
type Highlighter interface {
	Highlight(w io.Writer, code string, language string) error
}
