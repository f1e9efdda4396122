package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-publish/pkg/interfaces"
)

// codeBlockPriority places the code block renderer ahead of the default HTML
// renderer (priority 1000) so it owns ast.KindFencedCodeBlock.
const codeBlockPriority = 100

// Options configures an Engine.
type Options struct {
	// Extensions lists goldmark extension names. Empty selects GFM.
	Extensions []string
	HardWraps  bool
	// Unsafe lets raw HTML embedded in articles through to the output.
	Unsafe bool
	// HighlightStyle names the chroma style used when Highlighter is nil.
	HighlightStyle string
	Highlighter    interfaces.Highlighter
}

// Engine parses and renders article Markdown. It is stateless after
// construction and safe to reuse.
type Engine struct {
	md          goldmark.Markdown
	highlighter interfaces.Highlighter
}

var (
	_ interfaces.MarkdownParser   = (*Engine)(nil)
	_ interfaces.MarkdownRenderer = (*Engine)(nil)
)

// NewEngine builds a goldmark instance with the code block renderer
// registered in place of the default fenced code block output.
func NewEngine(opts Options) *Engine {
	highlighter := opts.Highlighter
	if highlighter == nil {
		highlighter = NewChromaHighlighter(opts.HighlightStyle)
	}

	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(
			util.Prioritized(NewCodeBlockRenderer(highlighter), codeBlockPriority),
		),
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return &Engine{
		md:          goldmark.New(engineOptions...),
		highlighter: highlighter,
	}
}

// Parse builds the syntax tree for source. Text segments in the returned
// tree point into source, so callers must keep both together.
func (e *Engine) Parse(source []byte) ast.Node {
	return e.md.Parser().Parse(text.NewReader(source))
}

// Render writes the HTML for node to w.
func (e *Engine) Render(w io.Writer, source []byte, node ast.Node) error {
	if node == nil {
		return nil
	}
	if err := e.md.Renderer().Render(w, source, node); err != nil {
		return fmt.Errorf("markdown render: %w", err)
	}
	return nil
}

// RenderString renders node into a string.
func (e *Engine) RenderString(source []byte, node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, source, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Convert parses and renders source in one step.
func (e *Engine) Convert(source []byte) (string, error) {
	return e.RenderString(source, e.Parse(source))
}

// Highlighter returns the highlighter used for fenced code blocks.
func (e *Engine) Highlighter() interfaces.Highlighter {
	return e.highlighter
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
