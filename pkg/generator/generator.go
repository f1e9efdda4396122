// Package generator exposes the static site builder for hosts that embed it
// without the publish facade. Use NewService with Config and Dependencies.
package generator

import (
	"io/fs"

	internal "github.com/goliatone/go-publish/internal/generator"
	"github.com/goliatone/go-publish/internal/markdown"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

type (
	Service          = internal.Service
	Config           = internal.Config
	BuildOptions     = internal.BuildOptions
	BuildResult      = internal.BuildResult
	Output           = internal.Output
	Dependencies     = internal.Dependencies
	TemplateRegistry = internal.TemplateRegistry
	SiteMetadata     = internal.SiteMetadata
	ArticlePage      = internal.ArticlePage
	IndexPage        = internal.IndexPage
	Engine           = markdown.Engine
	EngineOptions    = markdown.Options
)

var ErrTemplateNotFound = internal.ErrTemplateNotFound

// DefaultFeedLimit is the number of articles in feed.xml when Config.FeedLimit is unset.
const DefaultFeedLimit = internal.DefaultFeedLimit

// NewService wires a static site generator with the supplied configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	return internal.NewService(cfg, deps)
}

// NewEngine builds the Markdown engine the generator renders articles with.
func NewEngine(opts EngineOptions) *Engine {
	return markdown.NewEngine(opts)
}

// NewTemplateRegistry loads the built-in page templates, replacing any that
// overrides provides.
func NewTemplateRegistry(overrides fs.FS, renderer interfaces.MarkdownRenderer) (*TemplateRegistry, error) {
	return internal.NewTemplateRegistry(overrides, renderer)
}
