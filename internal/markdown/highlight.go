package markdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/goliatone/go-publish/pkg/interfaces"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrUnknownLanguage reports that no lexer matches the requested language.
var ErrUnknownLanguage = errors.New("markdown: unknown highlight language")

// ChromaHighlighter highlights code with chroma using CSS classes, so the
// page markup stays independent of the colour scheme.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

var _ interfaces.Highlighter = (*ChromaHighlighter)(nil)

// NewChromaHighlighter resolves styleName, falling back to the chroma
// default style when it is empty or unknown.
func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaHighlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Highlight writes highlighted markup for code. It returns ErrUnknownLanguage
// when no lexer is registered for language.
func (h *ChromaHighlighter) Highlight(w io.Writer, code string, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("markdown: tokenise %s: %w", language, err)
	}
	return h.formatter.Format(w, h.style, iterator)
}

// WriteCSS writes the stylesheet matching the classes emitted by Highlight.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// StyleName reports the resolved chroma style.
func (h *ChromaHighlighter) StyleName() string {
	return h.style.Name
}
