package articles

import (
	"iter"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/go-publish/internal/markdown"
)

// Document is a parsed Markdown body. Text segments in Root point into
// Source. A Document is not modified after parsing.
type Document struct {
	Root   ast.Node
	Source []byte
}

// Walk traverses the document tree.
func (d *Document) Walk() iter.Seq2[ast.Node, Phase] {
	if d == nil {
		return Walk(nil)
	}
	return Walk(d.Root)
}

// Title returns the text of the first level 1 heading, or "" when there is
// none. Inline markup is flattened.
func (d *Document) Title() string {
	for node, phase := range d.Walk() {
		if phase != Entering {
			continue
		}
		if heading, ok := node.(*ast.Heading); ok && heading.Level == 1 {
			return d.plainText(heading)
		}
	}
	return ""
}

func (d *Document) plainText(root ast.Node) string {
	var b strings.Builder
	for node, phase := range Walk(root) {
		if phase != Entering {
			continue
		}
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(d.Source))
			if n.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		}
	}
	return b.String()
}

// ImageFilenames returns local image destinations in document order.
// Remote http and https images are left out.
func (d *Document) ImageFilenames() []string {
	var images []string
	for node, phase := range d.Walk() {
		if phase != Entering {
			continue
		}
		image, ok := node.(*ast.Image)
		if !ok {
			continue
		}
		destination := string(image.Destination)
		if destination == "" || isRemote(destination) {
			continue
		}
		images = append(images, destination)
	}
	return images
}

func isRemote(destination string) bool {
	return strings.HasPrefix(destination, "http://") || strings.HasPrefix(destination, "https://")
}

// UsesMermaid reports whether any fenced code block mentions mermaid in its
// info string.
func (d *Document) UsesMermaid() bool {
	for node, phase := range d.Walk() {
		if phase != Entering {
			continue
		}
		if block, ok := node.(*ast.FencedCodeBlock); ok {
			if strings.Contains(markdown.InfoString(block, d.Source), "mermaid") {
				return true
			}
		}
	}
	return false
}

// CodeLanguages returns the sorted, unique language tags of fenced code
// blocks.
func (d *Document) CodeLanguages() []string {
	var languages []string
	for node, phase := range d.Walk() {
		if phase != Entering {
			continue
		}
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}
		if tag := markdown.LanguageTag(markdown.InfoString(block, d.Source)); tag != "" {
			languages = append(languages, tag)
		}
	}
	slices.Sort(languages)
	return slices.Compact(languages)
}
