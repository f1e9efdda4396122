package generator

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goliatone/go-publish/internal/articles"
)

// DefaultFeedLimit caps the feed when no limit is configured.
const DefaultFeedLimit = 20

type feedItem struct {
	Title       string
	Link        string
	GUID        string
	Summary     string
	PublishedAt time.Time
}

// buildFeedItems maps articles, newest first, to at most limit items.
func buildFeedItems(baseURL string, list []*articles.Article, limit int) []feedItem {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	items := make([]feedItem, 0, min(limit, len(list)))
	for _, article := range list {
		if len(items) == limit {
			break
		}
		title := article.Title()
		if title == "" {
			title = article.Name
		}
		items = append(items, feedItem{
			Title:       title,
			Link:        absoluteURL(baseURL, articleURL(article.Name)),
			GUID:        "urn:uuid:" + article.ID.String(),
			Summary:     normalizeWhitespace(article.Summary),
			PublishedAt: article.Published,
		})
	}
	return items
}

func buildRSSFeed(site SiteMetadata, items []feedItem) string {
	baseLink := absoluteURL(site.BaseURL, "/")

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(siteTitle(site))))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(baseLink)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(siteTitle(site))))
	if site.Language != "" {
		builder.WriteString(fmt.Sprintf("    <language>%s</language>\n", escapeXML(site.Language)))
	}
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", RSSDate(site.GeneratedAt)))
	for _, item := range items {
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid isPermaLink=\"false\">%s</guid>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", RSSDate(item.PublishedAt)))
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String()
}

func siteTitle(site SiteMetadata) string {
	if title := strings.TrimSpace(site.Title); title != "" {
		return title
	}
	return strings.TrimSpace(site.BaseURL)
}

func normalizeWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
