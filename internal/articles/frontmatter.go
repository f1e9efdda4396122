package articles

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// frontMatter is the optional YAML header of an article.
type frontMatter struct {
	Summary string   `yaml:"summary"`
	Draft   bool     `yaml:"draft"`
	Tags    []string `yaml:"tags"`
}

// splitFrontMatter separates the header from the Markdown body. Sources
// without a header, or whose leading block does not decode as a YAML
// mapping (a thematic break followed by prose), are returned unchanged.
func splitFrontMatter(source []byte) (frontMatter, []byte) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return frontMatter{}, source
	}
	return meta, body
}
