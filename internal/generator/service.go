package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-publish/internal/articles"
	"github.com/goliatone/go-publish/internal/logging"
	"github.com/goliatone/go-publish/internal/markdown"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures the generator inputs and toggles. Source directories are
// slash separated paths inside Dependencies.Source. OutputDir is a local
// filesystem path.
type Config struct {
	ArticlesDir     string
	StylesDir       string
	FontsDir        string
	ImagesDir       string
	OutputDir       string
	SiteTitle       string
	BaseURL         string
	Language        string
	IncludeDrafts   bool
	GenerateFeed    bool
	FeedLimit       int
	GenerateSitemap bool
	GenerateRobots  bool
	// Preserve holds path.Match patterns of files in OutputDir that a build
	// keeps even though it does not generate them.
	Preserve []string
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	// DryRun renders every output in memory and writes nothing.
	DryRun bool
}

// Output describes one generated file.
type Output struct {
	Path        string
	Category    string
	ContentType string
	Size        int
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	Articles int
	Pages    int
	Assets   int
	Tags     []string
	Duration time.Duration
	DryRun   bool
	Outputs  []Output
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Source    fs.FS
	Engine    *markdown.Engine
	Templates interfaces.TemplateRenderer
	Tags      articles.TagMapper
	Logger    interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	return &service{
		cfg:    cfg,
		deps:   deps,
		now:    time.Now,
		logger: logging.OrNoOp(deps.Logger),
	}
}

type service struct {
	cfg    Config
	deps   Dependencies
	now    func() time.Time
	logger interfaces.Logger
}

func (s *service) validate(opts BuildOptions) error {
	if s.deps.Source == nil {
		return errSourceRequired
	}
	if s.deps.Engine == nil {
		return errEngineRequired
	}
	if s.deps.Templates == nil {
		return errTemplateRequired
	}
	if !opts.DryRun && strings.TrimSpace(s.cfg.OutputDir) == "" {
		return errOutputRequired
	}
	return nil
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validate(opts); err != nil {
		return nil, err
	}

	start := s.now()
	list, err := articles.ParseDir(ctx, s.deps.Source, s.cfg.ArticlesDir, articles.ParseOptions{
		Parser:        s.deps.Engine,
		Tags:          s.deps.Tags,
		IncludeDrafts: s.cfg.IncludeDrafts,
		Logger:        s.logger,
	})
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Articles: len(list),
		Tags:     articles.CollectTags(list),
		DryRun:   opts.DryRun,
	}

	var (
		writer  artifactWriter
		staging string
	)
	if opts.DryRun {
		writer = newMemoryWriter()
	} else {
		staging, err = stagingDir(s.cfg.OutputDir)
		if err != nil {
			return nil, writeError(s.cfg.OutputDir, err)
		}
		writer = newDirWriter(staging)
	}

	b := &build{
		cfg:       s.cfg,
		source:    s.deps.Source,
		writer:    writer,
		templates: s.deps.Templates,
		logger:    s.logger,
		result:    result,
		site:      s.siteMetadata(start),
	}
	if css, ok := s.deps.Engine.Highlighter().(stylesheetWriter); ok {
		b.stylesheet = css
	}

	if err := b.run(ctx, list); err != nil {
		if staging != "" {
			_ = os.RemoveAll(staging)
		}
		s.logger.Error("generator.build.failed", "error", err)
		return nil, err
	}

	if staging != "" {
		kept, err := carryOver(s.cfg.OutputDir, staging, s.cfg.Preserve)
		if err != nil {
			_ = os.RemoveAll(staging)
			return nil, writeError(s.cfg.OutputDir, err)
		}
		if len(kept) > 0 {
			s.logger.Debug("generator.output.preserved", "operation", storageOpCarry, "files", kept)
		}
		if err := promote(staging, s.cfg.OutputDir, s.now()); err != nil {
			_ = os.RemoveAll(staging)
			return nil, writeError(s.cfg.OutputDir, err)
		}
		s.logger.Debug("generator.output.promoted", "operation", storageOpPromote, "path", s.cfg.OutputDir)
	}

	result.Duration = s.now().Sub(start)
	s.logger.Info("generator.build.completed",
		"articles", result.Articles,
		"pages", result.Pages,
		"assets", result.Assets,
		"tags", len(result.Tags),
		"dry_run", result.DryRun,
		"duration", result.Duration,
	)
	return result, nil
}

func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(s.cfg.OutputDir) == "" {
		return errOutputRequired
	}
	if err := os.RemoveAll(s.cfg.OutputDir); err != nil {
		return writeError(s.cfg.OutputDir, err)
	}
	s.logger.Info("generator.clean.completed", "operation", storageOpRemove, "path", s.cfg.OutputDir)
	return nil
}

func (s *service) siteMetadata(generatedAt time.Time) SiteMetadata {
	site := SiteMetadata{
		Title:       s.cfg.SiteTitle,
		BaseURL:     strings.TrimRight(strings.TrimSpace(s.cfg.BaseURL), "/"),
		Language:    s.cfg.Language,
		GeneratedAt: generatedAt.UTC(),
	}
	if s.cfg.GenerateFeed && site.BaseURL != "" {
		site.FeedURL = absoluteURL(site.BaseURL, feedFile)
	}
	return site
}

// build carries the state of a single Build call.
type build struct {
	cfg        Config
	source     fs.FS
	writer     artifactWriter
	templates  interfaces.TemplateRenderer
	stylesheet stylesheetWriter
	logger     interfaces.Logger
	result     *BuildResult
	site       SiteMetadata
}

func (b *build) run(ctx context.Context, list []*articles.Article) error {
	written := make([]*articles.Article, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, article := range list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, dup := seen[article.Name]; dup {
			b.logger.Warn("generator.article.duplicate", "article", article.Name, "path", article.SourcePath)
			continue
		}
		seen[article.Name] = struct{}{}
		if err := b.writeArticle(ctx, article); err != nil {
			return err
		}
		written = append(written, article)
	}

	if err := b.writeIndex(ctx, written); err != nil {
		return err
	}
	if err := b.writeAssets(ctx); err != nil {
		return err
	}
	return b.writeDiscovery(ctx, written)
}

func (b *build) writeArticle(ctx context.Context, article *articles.Article) error {
	dir, err := articleDir(article.Name)
	if err != nil {
		return articleNameError(article.SourcePath, article.Name)
	}
	if err := b.writer.EnsureDir(ctx, dir); err != nil {
		return writeError(dir, err)
	}
	b.logger.Debug("generator.dir.ensured", "operation", storageOpEnsureDir, "path", dir)

	out := articleOutputPath(dir)
	html, err := b.templates.Render(templateArticle, newArticlePage(b.site, article))
	if err != nil {
		return templateError(templateArticle, out, err)
	}
	if err := b.write(ctx, writeFileRequest{
		Path:        out,
		Content:     []byte(html),
		Category:    categoryPage,
		ContentType: "text/html",
	}); err != nil {
		return err
	}

	copied := map[string]struct{}{}
	for _, image := range article.ImageFilenames() {
		rel, ok := imageSourcePath(image)
		if !ok {
			logging.WithArticleContext(b.logger, article.Name, article.SourcePath, "copy_image").
				Warn("generator.image.skipped", "image", image, "reason", "outside articles directory")
			continue
		}
		if _, done := copied[rel]; done {
			continue
		}
		copied[rel] = struct{}{}
		if err := b.copyFile(ctx, path.Join(b.cfg.ArticlesDir, rel), path.Join(dir, rel)); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) writeIndex(ctx context.Context, list []*articles.Article) error {
	html, err := b.templates.Render(templateIndex, newIndexPage(b.site, list))
	if err != nil {
		return templateError(templateIndex, indexFile, err)
	}
	return b.write(ctx, writeFileRequest{
		Path:        indexFile,
		Content:     []byte(html),
		Category:    categoryPage,
		ContentType: "text/html",
	})
}

// writeDiscovery emits the feed, sitemap and robots file. All of them need
// absolute URLs, so nothing is written without a base URL.
func (b *build) writeDiscovery(ctx context.Context, list []*articles.Article) error {
	if b.site.BaseURL == "" {
		if b.cfg.GenerateFeed || b.cfg.GenerateSitemap {
			b.logger.Warn("generator.discovery.skipped", "reason", "base url not configured")
		}
		return nil
	}

	if b.cfg.GenerateFeed {
		feed := buildRSSFeed(b.site, buildFeedItems(b.site.BaseURL, list, b.cfg.FeedLimit))
		if err := b.write(ctx, writeFileRequest{
			Path:        feedFile,
			Content:     []byte(feed),
			Category:    categoryFeed,
			ContentType: "application/rss+xml",
		}); err != nil {
			return err
		}
	}

	if b.cfg.GenerateSitemap {
		sitemap := buildSitemap(buildSitemapEntries(b.site.BaseURL, list, b.site.GeneratedAt))
		if err := b.write(ctx, writeFileRequest{
			Path:        sitemapFile,
			Content:     []byte(sitemap),
			Category:    categorySitemap,
			ContentType: "application/xml",
		}); err != nil {
			return err
		}
	}

	if b.cfg.GenerateRobots {
		robots := buildRobots(b.site.BaseURL, b.cfg.GenerateSitemap)
		if err := b.write(ctx, writeFileRequest{
			Path:        robotsFile,
			Content:     []byte(robots),
			Category:    categoryRobots,
			ContentType: "text/plain",
		}); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) write(ctx context.Context, req writeFileRequest) error {
	if err := b.writer.WriteFile(ctx, req); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return writeError(req.Path, err)
	}

	b.result.Outputs = append(b.result.Outputs, Output{
		Path:        req.Path,
		Category:    string(req.Category),
		ContentType: req.ContentType,
		Size:        len(req.Content),
	})
	switch req.Category {
	case categoryPage:
		b.result.Pages++
	case categoryAsset:
		b.result.Assets++
	}
	b.logger.Debug("generator.file.written", "operation", storageOpWrite, "path", req.Path, "category", string(req.Category))
	return nil
}
