package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-publish/internal/articles"
)

type sitemapEntry struct {
	Location string
	LastMod  time.Time
}

// buildSitemapEntries lists the index and every article page.
func buildSitemapEntries(baseURL string, list []*articles.Article, generatedAt time.Time) []sitemapEntry {
	entries := make([]sitemapEntry, 0, len(list)+1)
	entries = append(entries, sitemapEntry{Location: absoluteURL(baseURL, "/"), LastMod: generatedAt})
	for _, article := range list {
		lastMod := article.LastModified
		if lastMod.IsZero() {
			lastMod = article.Published
		}
		entries = append(entries, sitemapEntry{
			Location: absoluteURL(baseURL, articleURL(article.Name)),
			LastMod:  lastMod,
		})
	}
	return entries
}

func buildSitemap(entries []sitemapEntry) string {
	seen := map[string]struct{}{}
	unique := make([]sitemapEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Location]; ok {
			continue
		}
		seen[entry.Location] = struct{}{}
		unique = append(unique, entry)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Location < unique[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range unique {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", escapeXML(entry.Location)))
		if !entry.LastMod.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func buildRobots(baseURL string, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s\n", absoluteURL(baseURL, sitemapFile)))
	}
	return builder.String()
}
