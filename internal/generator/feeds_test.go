package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-publish/internal/articles"
	"github.com/goliatone/go-publish/internal/identity"
)

func feedArticles(count int) []*articles.Article {
	list := make([]*articles.Article, 0, count)
	for i := range count {
		published := time.Date(2024, 1, count-i, 0, 0, 0, 0, time.UTC)
		name := "Article" + string(rune('A'+i))
		list = append(list, &articles.Article{
			ID:        identity.ArticleUUID(name, published.Format(time.DateOnly)),
			Name:      name,
			Body:      &articles.Document{},
			Published: published,
			Summary:   "  spaced \n summary ",
		})
	}
	return list
}

func TestBuildFeedItemsDefaultsLimit(t *testing.T) {
	items := buildFeedItems("https://example.com", feedArticles(DefaultFeedLimit+5), 0)
	if len(items) != DefaultFeedLimit {
		t.Fatalf("expected %d items, got %d", DefaultFeedLimit, len(items))
	}
	if items[0].Title != "ArticleA" {
		t.Fatalf("expected name as fallback title, got %q", items[0].Title)
	}
	if items[0].Summary != "spaced summary" {
		t.Fatalf("expected normalised summary, got %q", items[0].Summary)
	}
}

func TestBuildRSSFeedEscapes(t *testing.T) {
	site := SiteMetadata{Title: "Tips & Tricks", BaseURL: "https://example.com", Language: "de", GeneratedAt: fixedNow}
	items := []feedItem{{Title: "<Generics>", Link: "https://example.com/G/", GUID: "urn:uuid:1", PublishedAt: fixedNow}}

	feed := buildRSSFeed(site, items)

	for _, want := range []string{
		"<title>Tips &amp; Tricks</title>",
		"<title>&lt;Generics&gt;</title>",
		"<language>de</language>",
		"<lastBuildDate>Mon, 05 Feb 2024 14:30:00 GMT</lastBuildDate>",
	} {
		if !strings.Contains(feed, want) {
			t.Fatalf("expected %q in feed:\n%s", want, feed)
		}
	}
	if strings.Contains(feed, "<description>  ") {
		t.Fatalf("unexpected raw description")
	}
}

func TestBuildSitemapDedupesAndSorts(t *testing.T) {
	entries := []sitemapEntry{
		{Location: "https://example.com/b/"},
		{Location: "https://example.com/a/", LastMod: fixedNow},
		{Location: "https://example.com/b/"},
	}

	sitemap := buildSitemap(entries)

	if strings.Count(sitemap, "<url>") != 2 {
		t.Fatalf("expected duplicates removed:\n%s", sitemap)
	}
	if strings.Index(sitemap, "/a/") > strings.Index(sitemap, "/b/") {
		t.Fatalf("expected sorted locations:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<lastmod>2024-02-05T14:30:00Z</lastmod>") {
		t.Fatalf("expected lastmod:\n%s", sitemap)
	}
}

func TestBuildSitemapEntriesFallBackToPublished(t *testing.T) {
	list := feedArticles(1)
	entries := buildSitemapEntries("https://example.com", list, fixedNow)

	if len(entries) != 2 {
		t.Fatalf("expected index plus one article, got %d", len(entries))
	}
	if !entries[1].LastMod.Equal(list[0].Published) {
		t.Fatalf("expected published date as lastmod, got %s", entries[1].LastMod)
	}
}

func TestBuildRobots(t *testing.T) {
	if got := buildRobots("https://example.com", false); strings.Contains(got, "Sitemap") {
		t.Fatalf("unexpected sitemap line:\n%s", got)
	}
}
