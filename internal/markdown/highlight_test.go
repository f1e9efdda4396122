package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChromaHighlighterUsesClasses(t *testing.T) {
	h := NewChromaHighlighter("")

	var buf bytes.Buffer
	if err := h.Highlight(&buf, "package main\n", "go"); err != nil {
		t.Fatalf("highlight: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<span class="`) {
		t.Fatalf("expected class based spans, got %q", out)
	}
	if strings.Contains(out, "<pre") || strings.Contains(out, "style=") {
		t.Fatalf("expected no wrapper or inline styles, got %q", out)
	}
}

func TestChromaHighlighterUnknownLanguage(t *testing.T) {
	h := NewChromaHighlighter("github")

	err := h.Highlight(&bytes.Buffer{}, "x", "definitely-not-a-language")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestChromaHighlighterWriteCSS(t *testing.T) {
	h := NewChromaHighlighter("no-such-style")

	var buf bytes.Buffer
	if err := h.WriteCSS(&buf); err != nil {
		t.Fatalf("write css: %v", err)
	}
	if !strings.Contains(buf.String(), ".chroma") {
		t.Fatalf("expected chroma selectors, got %q", buf.String())
	}
	if h.StyleName() == "" {
		t.Fatalf("expected resolved style name")
	}
}
