package articles

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Extension is the suffix of article source files.
const Extension = ".md"

var tagPattern = regexp.MustCompile(`#([0-9a-zA-Z]+)`)

var publishedLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"20060102",
}

// Filename holds the metadata encoded in an article file name.
type Filename struct {
	Published string
	Name      string
	Tags      []string
}

// ParseFilename splits base, a file name without extension, on its first
// underscore. Tags are collected from the name part and the # markers are
// removed from the name.
func ParseFilename(base string) Filename {
	published, raw, _ := strings.Cut(base, "_")

	parsed := Filename{
		Published: published,
		Name:      strings.ReplaceAll(raw, "#", ""),
	}
	for _, match := range tagPattern.FindAllStringSubmatch(raw, -1) {
		parsed.Tags = append(parsed.Tags, match[1])
	}
	return parsed
}

// Valid reports whether both the date and the name segment are present.
func (f Filename) Valid() bool {
	return f.Published != "" && f.Name != ""
}

// ParsePublished parses a date segment. Values without a zone are UTC.
func ParsePublished(raw string) (time.Time, error) {
	for _, layout := range publishedLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised publication date %q", raw)
}
