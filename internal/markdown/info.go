package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

const languagePrefix = "language-"

// InfoString returns the raw info string of a fenced code block.
func InfoString(node *ast.FencedCodeBlock, source []byte) string {
	if node == nil || node.Info == nil {
		return ""
	}
	return string(node.Info.Segment.Value(source))
}

// LanguageTag returns the first whitespace separated word of info.
func LanguageTag(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LanguageClass escapes tag for attribute use and adds the language- prefix
// unless the tag already carries it.
func LanguageClass(tag string) string {
	escaped := string(util.EscapeHTML([]byte(tag)))
	if hasLanguagePrefix(escaped) {
		return escaped
	}
	return languagePrefix + escaped
}

// dispatchKey lowercases tag and strips a leading language- prefix.
func dispatchKey(tag string) string {
	key := strings.ToLower(tag)
	if hasLanguagePrefix(key) {
		key = key[len(languagePrefix):]
	}
	return key
}

func hasLanguagePrefix(s string) bool {
	return len(s) >= len(languagePrefix) && strings.EqualFold(s[:len(languagePrefix)], languagePrefix)
}

// literal joins the raw lines of a block node.
func literal(node ast.Node, source []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(source))
	}
	return b.String()
}
