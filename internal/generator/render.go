package generator

import (
	"time"

	"github.com/goliatone/go-publish/internal/articles"
)

// SiteMetadata is shared by every page.
type SiteMetadata struct {
	Title       string
	BaseURL     string
	Language    string
	FeedURL     string
	GeneratedAt time.Time
}

// ArticleView is the template representation of an article.
type ArticleView struct {
	ID           string
	Name         string
	Title        string
	Summary      string
	URL          string
	Published    time.Time
	LastModified time.Time
	Tags         []string
	Languages    []string
	UsesMermaid  bool
	Body         *articles.Document
}

// TagGroupView lists the articles under one tag.
type TagGroupView struct {
	Tag      string
	Anchor   string
	Articles []ArticleView
}

// ArticlePage is the context of the article template.
type ArticlePage struct {
	Site        SiteMetadata
	Title       string
	RootPath    string
	UsesMermaid bool
	Article     ArticleView
}

// IndexPage is the context of the index template.
type IndexPage struct {
	Site        SiteMetadata
	Title       string
	RootPath    string
	UsesMermaid bool
	Articles    []ArticleView
	Tags        []string
	TagGroups   []TagGroupView
}

func newArticleView(article *articles.Article, urlPrefix string) ArticleView {
	title := article.Title()
	if title == "" {
		title = article.Name
	}
	return ArticleView{
		ID:           article.ID.String(),
		Name:         article.Name,
		Title:        title,
		Summary:      article.Summary,
		URL:          urlPrefix + articleURL(article.Name),
		Published:    article.Published,
		LastModified: article.LastModified,
		Tags:         article.Tags,
		Languages:    article.CodeLanguages(),
		UsesMermaid:  article.UsesMermaid(),
		Body:         article.Body,
	}
}

func newIndexPage(site SiteMetadata, list []*articles.Article) IndexPage {
	views := make([]ArticleView, 0, len(list))
	byArticle := make(map[*articles.Article]ArticleView, len(list))
	for _, article := range list {
		view := newArticleView(article, "")
		views = append(views, view)
		byArticle[article] = view
	}

	groups := articles.GroupByTag(list)
	groupViews := make([]TagGroupView, 0, len(groups))
	tags := make([]string, 0, len(groups))
	for _, group := range groups {
		view := TagGroupView{Tag: group.Tag, Anchor: group.Anchor}
		for _, article := range group.Articles {
			view.Articles = append(view.Articles, byArticle[article])
		}
		groupViews = append(groupViews, view)
		tags = append(tags, group.Tag)
	}

	return IndexPage{
		Site:      site,
		Title:     site.Title,
		Articles:  views,
		Tags:      tags,
		TagGroups: groupViews,
	}
}

func newArticlePage(site SiteMetadata, article *articles.Article) ArticlePage {
	view := newArticleView(article, "../")
	title := view.Title
	if site.Title != "" && site.Title != title {
		title = view.Title + " | " + site.Title
	}
	return ArticlePage{
		Site:        site,
		Title:       title,
		RootPath:    "../",
		UsesMermaid: view.UsesMermaid,
		Article:     view,
	}
}
