package runtimeconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-publish/internal/runtimeconfig"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := runtimeconfig.Load("publish.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	defaults := runtimeconfig.DefaultConfig()
	if cfg.Articles != defaults.Articles || cfg.Output != defaults.Output || cfg.Root != "." {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	path := filepath.Join(dir, "publish.yaml")
	writeFile(t, path, `
articles: posts
output: dist
site:
  title: Notes
  base_url: https://example.com/notes
tags:
  k8s: [kubernetes, devops]
markdown:
  hard_wraps: true
feed:
  limit: 5
`)

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Root != dir {
		t.Fatalf("expected root %q, got %q", dir, cfg.Root)
	}
	if cfg.Articles != "posts" || cfg.Output != "dist" {
		t.Fatalf("unexpected dirs: %+v", cfg)
	}
	if cfg.Styles != "styles" {
		t.Fatalf("expected default styles dir to survive, got %q", cfg.Styles)
	}
	if cfg.Site.Title != "Notes" || cfg.Site.BaseURL != "https://example.com/notes" {
		t.Fatalf("unexpected site: %+v", cfg.Site)
	}
	if got := cfg.Tags["k8s"]; len(got) != 2 || got[0] != "kubernetes" {
		t.Fatalf("unexpected tags: %v", cfg.Tags)
	}
	if !cfg.Markdown.HardWraps || cfg.Feed.Limit != 5 || !cfg.Feed.Enabled {
		t.Fatalf("unexpected markdown/feed: %+v %+v", cfg.Markdown, cfg.Feed)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "publish.yaml", "artcles: typo\n")

	if _, err := runtimeconfig.Load("publish.yaml"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "publish.yaml", "")

	cfg, err := runtimeconfig.Load("publish.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Articles != "tutorials" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "publish.yaml", "output: dist\n")
	t.Setenv("PUBLISH_OUTPUT", "build")
	t.Setenv("PUBLISH_INCLUDE_DRAFTS", "true")
	t.Setenv("PUBLISH_FEED_LIMIT", "3")

	cfg, err := runtimeconfig.Load("publish.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Output != "build" || !cfg.IncludeDrafts || cfg.Feed.Limit != 3 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_PreserveListFromFileAndEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "publish.yaml", "preserve: [CNAME, \"google*.html\"]\n")

	cfg, err := runtimeconfig.Load("publish.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(cfg.Preserve) != 2 || cfg.Preserve[1] != "google*.html" {
		t.Fatalf("expected preserve list from file, got %v", cfg.Preserve)
	}

	t.Setenv("PUBLISH_PRESERVE", " keybase.txt , ,.well-known/*")
	cfg, err = runtimeconfig.Load("publish.yaml")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(cfg.Preserve) != 2 || cfg.Preserve[0] != "keybase.txt" || cfg.Preserve[1] != ".well-known/*" {
		t.Fatalf("expected preserve list from environment, got %v", cfg.Preserve)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PUBLISH_SITE_TITLE", "")
	os.Unsetenv("PUBLISH_SITE_TITLE")
	writeFile(t, runtimeconfig.DotEnvFile, "PUBLISH_SITE_TITLE=From Dotenv\n")
	t.Cleanup(func() { os.Unsetenv("PUBLISH_SITE_TITLE") })

	cfg, err := runtimeconfig.Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Site.Title != "From Dotenv" {
		t.Fatalf("expected title from .env, got %q", cfg.Site.Title)
	}
}

func TestLoad_RejectsInvalidBoolOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PUBLISH_FEED", "sometimes")

	if _, err := runtimeconfig.Load(""); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}
