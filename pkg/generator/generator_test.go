package generator_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-publish/pkg/generator"
)

func TestNewServiceDryRun(t *testing.T) {
	source := fstest.MapFS{
		"posts/2023-07-08_Hello#go.md": {Data: []byte("# Hello\n\nWorld.\n")},
	}
	engine := generator.NewEngine(generator.EngineOptions{})
	templates, err := generator.NewTemplateRegistry(nil, engine)
	if err != nil {
		t.Fatalf("template registry: %v", err)
	}

	svc := generator.NewService(generator.Config{
		ArticlesDir: "posts",
		OutputDir:   t.TempDir(),
		SiteTitle:   "Embedded",
	}, generator.Dependencies{
		Source:    source,
		Engine:    engine,
		Templates: templates,
	})

	result, err := svc.Build(context.Background(), generator.BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if result.Articles != 1 || result.Pages != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
