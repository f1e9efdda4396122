package publish_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	publish "github.com/goliatone/go-publish"
	"github.com/goliatone/go-publish/internal/di"
	"github.com/goliatone/go-publish/internal/logging/console"
)

func writeProjectFile(t *testing.T, root, name, content string) {
	t.Helper()
	target := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newProject(t *testing.T) publish.Config {
	t.Helper()
	root := t.TempDir()
	writeProjectFile(t, root, "tutorials/2021-03-04_Intro#go.md", "# Intro to Go\n\n![diagram](images/flow.png)\n\n```go\nfunc main() {}\n```\n")
	writeProjectFile(t, root, "tutorials/2022-05-06_Charts#js.md", "# Charts\n\n```mermaid\ngraph TD; A-->B\n```\n\n```csv\nname,value\nalpha,1\n```\n")
	writeProjectFile(t, root, "tutorials/images/flow.png", "png")
	writeProjectFile(t, root, "tutorials/notes.txt", "ignored")
	writeProjectFile(t, root, "styles/site.css", "body {\n  color: red;\n}\n")
	writeProjectFile(t, root, "fonts/inter.woff2", "font")

	cfg := publish.DefaultConfig()
	cfg.Root = root
	cfg.Site.BaseURL = "https://example.com/tutorials/"
	return cfg
}

func quietLogger() di.Option {
	return di.WithLoggerProvider(console.NewProvider(console.Options{Writer: io.Discard}))
}

func TestModuleBuildWritesSite(t *testing.T) {
	cfg := newProject(t)
	module, err := publish.New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	result, err := module.Build(context.Background(), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result == nil || result.Articles != 2 || result.Pages != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}

	out := cfg.OutputPath()
	for _, name := range []string{
		"index.html",
		"Introgo/index.html",
		"Introgo/images/flow.png",
		"Chartsjs/index.html",
		"styles/bundle.min.css",
		"fonts/inter.woff2",
		"feed.xml",
		"sitemap.xml",
		"robots.txt",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Fatalf("expected %s in output: %v", name, err)
		}
	}

	charts, err := os.ReadFile(filepath.Join(out, "Chartsjs", "index.html"))
	if err != nil {
		t.Fatalf("read charts page: %v", err)
	}
	html := string(charts)
	if !strings.Contains(html, `<pre class="mermaid">graph TD; A-->B`) {
		t.Fatalf("expected raw mermaid block, got %s", html)
	}
	if !strings.Contains(html, `<div class="csv-table"><table>`) {
		t.Fatalf("expected csv table, got %s", html)
	}

	bundle, err := os.ReadFile(filepath.Join(out, "styles", "bundle.min.css"))
	if err != nil {
		t.Fatalf("read bundle: %v", err)
	}
	if !strings.Contains(string(bundle), "body{color:red}") {
		t.Fatalf("expected minified site css, got %s", bundle)
	}
}

func TestModuleRebuildKeepsCNAME(t *testing.T) {
	cfg := newProject(t)
	module, err := publish.New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if _, err := module.Build(context.Background(), false); err != nil {
		t.Fatalf("first build: %v", err)
	}
	out := cfg.OutputPath()
	writeProjectFile(t, out, "CNAME", "tutorials.example.com\n")
	writeProjectFile(t, out, "notes.html", "left over")

	if _, err := module.Build(context.Background(), false); err != nil {
		t.Fatalf("second build: %v", err)
	}
	cname, err := os.ReadFile(filepath.Join(out, "CNAME"))
	if err != nil || string(cname) != "tutorials.example.com\n" {
		t.Fatalf("expected CNAME to survive, got %q, %v", cname, err)
	}
	if _, err := os.Stat(filepath.Join(out, "notes.html")); !os.IsNotExist(err) {
		t.Fatalf("expected files outside the preserve list to be replaced, got %v", err)
	}
	intro, err := os.ReadFile(filepath.Join(out, "Introgo", "index.html"))
	if err != nil {
		t.Fatalf("read intro page: %v", err)
	}
	if !strings.Contains(string(intro), `<img src="images/flow.png"`) {
		t.Fatalf("expected rendered article body, got %s", intro)
	}
}

func TestModuleDryRunLeavesOutputUntouched(t *testing.T) {
	cfg := newProject(t)
	module, err := publish.New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	result, err := module.Build(context.Background(), true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if !result.DryRun || len(result.Outputs) == 0 {
		t.Fatalf("expected dry run outputs, got %+v", result)
	}
	if _, err := os.Stat(cfg.OutputPath()); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, got %v", err)
	}
}

func TestModuleCleanRemovesOutput(t *testing.T) {
	cfg := newProject(t)
	module, err := publish.New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if _, err := module.Build(context.Background(), false); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := module.Clean(context.Background()); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(cfg.OutputPath()); !os.IsNotExist(err) {
		t.Fatalf("expected output directory removed, got %v", err)
	}
}

func TestModuleArticlesNewestFirst(t *testing.T) {
	cfg := newProject(t)
	module, err := publish.New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	list, err := module.Articles(context.Background())
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Chartsjs" || list[1].Name != "Introgo" {
		t.Fatalf("unexpected articles: %v", list)
	}
	if list[1].Title() != "Intro to Go" {
		t.Fatalf("unexpected title %q", list[1].Title())
	}
}
