package publish

import (
	"context"

	"github.com/goliatone/go-publish/internal/articles"
	staticcmd "github.com/goliatone/go-publish/internal/commands/static"
	"github.com/goliatone/go-publish/internal/di"
	"github.com/goliatone/go-publish/internal/generator"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// GeneratorService exports the site generator contract.
type GeneratorService = generator.Service

// BuildResult exports the generator build summary.
type BuildResult = generator.BuildResult

// BuildOutput describes one generated file.
type BuildOutput = generator.Output

// Article exports the parsed article model.
type Article = articles.Article

// BuildSiteCommand exports the build command message.
type BuildSiteCommand = staticcmd.BuildSiteCommand

// CleanSiteCommand exports the clean command message.
type CleanSiteCommand = staticcmd.CleanSiteCommand

// ResultEnvelope exports the payload handed to build result callbacks.
type ResultEnvelope = staticcmd.ResultEnvelope

// Module represents the top level publisher façade.
type Module struct {
	container *di.Container
}

// New constructs a publisher using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Generator returns the site generator.
func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

// Logger returns the provider selected by Config.Logging.
func (m *Module) Logger() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// Build runs a full build through the command handler. With dryRun set nothing
// is written and the result lists what would have been.
func (m *Module) Build(ctx context.Context, dryRun bool) (*BuildResult, error) {
	var result *BuildResult
	cmd := BuildSiteCommand{
		DryRun: dryRun,
		ResultCallback: func(env ResultEnvelope) {
			result = env.Result
		},
	}
	if err := m.container.StaticHandlers().Build.Execute(ctx, cmd); err != nil {
		return result, err
	}
	return result, nil
}

// Clean removes the output directory.
func (m *Module) Clean(ctx context.Context) error {
	return m.container.StaticHandlers().Clean.Execute(ctx, CleanSiteCommand{})
}

// Articles lists the parsed articles, newest first.
func (m *Module) Articles(ctx context.Context) ([]*Article, error) {
	return m.container.Articles(ctx)
}
