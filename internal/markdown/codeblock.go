package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-publish/pkg/interfaces"
)

// CodeBlockRenderer renders fenced code blocks. Every other node kind keeps
// goldmark's default HTML output.
type CodeBlockRenderer struct {
	highlighter interfaces.Highlighter
}

// NewCodeBlockRenderer returns a renderer that highlights code through h.
// A nil highlighter renders plain escaped code.
func NewCodeBlockRenderer(h interfaces.Highlighter) *CodeBlockRenderer {
	return &CodeBlockRenderer{highlighter: h}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *CodeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *CodeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block := node.(*ast.FencedCodeBlock)
	code := literal(block, source)
	tag := LanguageTag(InfoString(block, source))

	switch {
	case tag == "":
		_, _ = w.WriteString("<pre><code>")
		_, _ = w.Write(util.EscapeHTML([]byte(code)))
		_, _ = w.WriteString("</code></pre>\n")
	case dispatchKey(tag) == "mermaid":
		_, _ = w.WriteString(`<pre class="mermaid">`)
		_, _ = w.WriteString(code)
		_, _ = w.WriteString("</pre>\n")
	case dispatchKey(tag) == "csv":
		writeCSVTable(w, code)
	default:
		_, _ = w.WriteString(`<pre><code class="`)
		_, _ = w.WriteString(LanguageClass(tag))
		_, _ = w.WriteString(`">`)
		_, _ = w.Write(r.highlight(code, dispatchKey(tag)))
		_, _ = w.WriteString("</code></pre>\n")
	}

	return ast.WalkSkipChildren, nil
}

// highlight returns the highlighted markup for code, or the escaped literal
// when the language is unknown or highlighting fails.
func (r *CodeBlockRenderer) highlight(code, language string) []byte {
	if r.highlighter != nil {
		var buf bytes.Buffer
		if err := r.highlighter.Highlight(&buf, code, language); err == nil {
			return buf.Bytes()
		}
	}
	return util.EscapeHTML([]byte(code))
}
