package di

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-publish/internal/articles"
	staticcmd "github.com/goliatone/go-publish/internal/commands/static"
	"github.com/goliatone/go-publish/internal/generator"
	"github.com/goliatone/go-publish/internal/logging"
	"github.com/goliatone/go-publish/internal/logging/console"
	"github.com/goliatone/go-publish/internal/logging/gologger"
	"github.com/goliatone/go-publish/internal/markdown"
	"github.com/goliatone/go-publish/internal/runtimeconfig"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// Container wires the publisher's collaborators from a runtime config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	source         fs.FS
	highlighter    interfaces.Highlighter
	template       interfaces.TemplateRenderer

	tags      articles.TagTable
	engine    *markdown.Engine
	generator generator.Service
	handlers  *staticcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithSource replaces the project root filesystem. Defaults to os.DirFS(Config.Root).
func WithSource(source fs.FS) Option {
	return func(c *Container) {
		if source != nil {
			c.source = source
		}
	}
}

// WithHighlighter overrides the chroma highlighter.
func WithHighlighter(h interfaces.Highlighter) Option {
	return func(c *Container) {
		if h != nil {
			c.highlighter = h
		}
	}
}

// WithTemplate overrides the page template renderer.
func WithTemplate(tr interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		if tr != nil {
			c.template = tr
		}
	}
}

// WithGeneratorService replaces the generator, mostly for tests.
func WithGeneratorService(svc generator.Service) Option {
	return func(c *Container) {
		if svc != nil {
			c.generator = svc
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		tags:   articles.DefaultTagTable().Merge(cfg.Tags),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if c.source == nil {
		c.source = os.DirFS(cfg.RootPath())
	}

	c.engine = markdown.NewEngine(markdown.Options{
		Extensions:     cfg.Markdown.Extensions,
		HardWraps:      cfg.Markdown.HardWraps,
		Unsafe:         cfg.Markdown.Unsafe,
		HighlightStyle: cfg.Markdown.HighlightStyle,
		Highlighter:    c.highlighter,
	})

	if err := c.configureTemplates(); err != nil {
		return nil, err
	}
	if err := c.configureGenerator(); err != nil {
		return nil, err
	}
	c.handlers = staticcmd.NewHandlerSet(c.generator, c.loggerProvider)

	logging.ModuleLogger(c.loggerProvider, "publish.di").Debug("container.configured",
		"provider", normalizedProvider(cfg.Logging.Provider),
		"root", cfg.RootPath(),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch normalizedProvider(c.Config.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  c.Config.Logging.Level,
			Format: c.Config.Logging.Format,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		} else {
			info := console.LevelInfo
			opts.MinLevel = &info
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureTemplates() error {
	if c.template != nil {
		return nil
	}
	var overrides fs.FS
	if dir := strings.TrimSpace(c.Config.Templates); dir != "" {
		clean, err := runtimeconfig.SourceDir(dir)
		if err != nil {
			return err
		}
		sub, err := fs.Sub(c.source, clean)
		if err != nil {
			return err
		}
		overrides = sub
	}
	registry, err := generator.NewTemplateRegistry(overrides, c.engine)
	if err != nil {
		return err
	}
	c.template = registry
	return nil
}

func (c *Container) configureGenerator() error {
	if c.generator != nil {
		return nil
	}
	resolved := generator.Config{
		OutputDir:       c.Config.OutputPath(),
		SiteTitle:       c.Config.Site.Title,
		BaseURL:         c.Config.Site.BaseURL,
		Language:        c.Config.Site.Language,
		IncludeDrafts:   c.Config.IncludeDrafts,
		GenerateFeed:    c.Config.Feed.Enabled,
		FeedLimit:       c.Config.Feed.Limit,
		GenerateSitemap: c.Config.Sitemap.Enabled,
		GenerateRobots:  c.Config.Sitemap.Robots,
		Preserve:        c.Config.Preserve,
	}
	sources := []struct {
		raw string
		dst *string
	}{
		{c.Config.Articles, &resolved.ArticlesDir},
		{c.Config.Styles, &resolved.StylesDir},
		{c.Config.Fonts, &resolved.FontsDir},
		{c.Config.Images, &resolved.ImagesDir},
	}
	for _, source := range sources {
		if strings.TrimSpace(source.raw) == "" {
			continue
		}
		clean, err := runtimeconfig.SourceDir(source.raw)
		if err != nil {
			return err
		}
		*source.dst = clean
	}

	c.generator = generator.NewService(resolved, generator.Dependencies{
		Source:    c.source,
		Engine:    c.engine,
		Templates: c.template,
		Tags:      c.tags.Mapper(),
		Logger:    logging.GeneratorLogger(c.loggerProvider),
	})
	return nil
}

// LoggerProvider returns the configured provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Engine returns the shared Markdown engine.
func (c *Container) Engine() *markdown.Engine {
	return c.engine
}

// TemplateRenderer returns the page template renderer.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.template
}

// GeneratorService returns the site generator.
func (c *Container) GeneratorService() generator.Service {
	return c.generator
}

// StaticHandlers returns the build and clean command handlers.
func (c *Container) StaticHandlers() *staticcmd.HandlerSet {
	return c.handlers
}

// Articles parses the configured articles directory without rendering anything.
func (c *Container) Articles(ctx context.Context) ([]*articles.Article, error) {
	dir, err := runtimeconfig.SourceDir(c.Config.Articles)
	if err != nil {
		return nil, err
	}
	return articles.ParseDir(ctx, c.source, dir, articles.ParseOptions{
		Parser:        c.engine,
		Tags:          c.tags.Mapper(),
		IncludeDrafts: c.Config.IncludeDrafts,
		Logger:        logging.ArticlesLogger(c.loggerProvider),
	})
}

func normalizedProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
