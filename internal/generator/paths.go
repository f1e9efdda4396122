package generator

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"
)

const (
	indexFile    = "index.html"
	bundlePath   = "styles/bundle.min.css"
	stylesOutDir = "styles"
	fontsOutDir  = "fonts"
	faviconFile  = "favicon.ico"
	feedFile     = "feed.xml"
	sitemapFile  = "sitemap.xml"
	robotsFile   = "robots.txt"
)

// articleDir validates an article name for use as a single output
// directory.
func articleDir(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid article directory %q", name)
	}
	return name, nil
}

func articleOutputPath(name string) string {
	return path.Join(name, indexFile)
}

// articleURL is the link to an article page relative to the site root.
func articleURL(name string) string {
	return url.PathEscape(name) + "/"
}

// imageSourcePath cleans an image destination relative to the articles
// directory. ok is false for destinations that would leave it.
func imageSourcePath(destination string) (rel string, ok bool) {
	if i := strings.IndexAny(destination, "?#"); i >= 0 {
		destination = destination[:i]
	}
	decoded, err := url.PathUnescape(destination)
	if err != nil {
		decoded = destination
	}
	clean := path.Clean(decoded)
	if clean == "." || !fs.ValidPath(clean) {
		return "", false
	}
	return clean, true
}

func absoluteURL(base, route string) string {
	targetBase := strings.TrimRight(strings.TrimSpace(base), "/")
	normalized := strings.TrimSpace(route)
	if normalized == "" {
		return targetBase + "/"
	}
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	return targetBase + normalized
}
