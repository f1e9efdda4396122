package articles

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Article is one published page.
type Article struct {
	ID           uuid.UUID
	Name         string
	Body         *Document
	Published    time.Time
	LastModified time.Time
	Tags         []string
	Summary      string
	Draft        bool
	// SourcePath is the slash separated path of the source file within the
	// scanned filesystem.
	SourcePath string
}

// Title returns the first level 1 heading of the body.
func (a *Article) Title() string {
	return a.Body.Title()
}

// ImageFilenames returns the local images referenced by the body.
func (a *Article) ImageFilenames() []string {
	return a.Body.ImageFilenames()
}

// UsesMermaid reports whether the body contains a Mermaid diagram.
func (a *Article) UsesMermaid() bool {
	return a.Body.UsesMermaid()
}

// CodeLanguages returns the languages of the body's fenced code blocks.
func (a *Article) CodeLanguages() []string {
	return a.Body.CodeLanguages()
}

// HasTag reports whether tag is one of the article's normalised tags.
func (a *Article) HasTag(tag string) bool {
	return slices.Contains(a.Tags, tag)
}
