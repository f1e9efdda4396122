package runtimeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

var ErrArticlesDirRequired = errors.New("publish config: articles directory is required")
var ErrOutputDirRequired = errors.New("publish config: output directory is required")

// ErrSourcePathInvalid reports a source directory outside the project root.
var ErrSourcePathInvalid = errors.New("publish config: source directories must be relative to the project root")
var ErrBaseURLInvalid = errors.New("publish config: base url must be an absolute http(s) url")
var ErrFeedLimitInvalid = errors.New("publish config: feed limit must be zero or positive")
var ErrLoggingProviderRequired = errors.New("publish config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("publish config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("publish config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("publish config: logging format is invalid")
var ErrPreservePatternInvalid = errors.New("publish config: preserve pattern is invalid")

// Config describes a site build. Source directories are relative to Root;
// Output may be absolute.
type Config struct {
	Root          string              `yaml:"root"`
	Articles      string              `yaml:"articles"`
	Output        string              `yaml:"output"`
	Templates     string              `yaml:"templates"`
	Styles        string              `yaml:"styles"`
	Fonts         string              `yaml:"fonts"`
	Images        string              `yaml:"images"`
	IncludeDrafts bool                `yaml:"include_drafts"`
	// Preserve lists path.Match patterns, relative to Output, of files that
	// are not generated but must survive a rebuild (CNAME, verification files).
	Preserve      []string            `yaml:"preserve"`
	Site          SiteConfig          `yaml:"site"`
	Tags          map[string][]string `yaml:"tags"`
	Markdown      MarkdownConfig      `yaml:"markdown"`
	Feed          FeedConfig          `yaml:"feed"`
	Sitemap       SitemapConfig       `yaml:"sitemap"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// SiteConfig holds values shared by every page.
type SiteConfig struct {
	Title    string `yaml:"title"`
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
}

// MarkdownConfig controls article rendering.
type MarkdownConfig struct {
	Extensions     []string `yaml:"extensions"`
	Unsafe         bool     `yaml:"unsafe"`
	HardWraps      bool     `yaml:"hard_wraps"`
	HighlightStyle string   `yaml:"highlight_style"`
}

// FeedConfig toggles the RSS feed. It needs Site.BaseURL.
type FeedConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// SitemapConfig toggles sitemap.xml and robots.txt. They need Site.BaseURL.
type SitemapConfig struct {
	Enabled bool `yaml:"enabled"`
	Robots  bool `yaml:"robots"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider string `yaml:"provider"`
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
}

// DefaultConfig returns the conventional project layout.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		Articles:  "tutorials",
		Output:    "public",
		Templates: "templates",
		Styles:    "styles",
		Fonts:     "fonts",
		Images:    "images",
		Preserve:  []string{"CNAME", ".nojekyll"},
		Site: SiteConfig{
			Title:    "Tutorials",
			Language: "de",
		},
		Tags: map[string][]string{},
		Markdown: MarkdownConfig{
			HighlightStyle: "github",
		},
		Feed: FeedConfig{
			Enabled: true,
			Limit:   20,
		},
		Sitemap: SitemapConfig{
			Enabled: true,
			Robots:  true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Articles) == "" {
		return ErrArticlesDirRequired
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return ErrOutputDirRequired
	}
	for name, dir := range map[string]string{
		"articles":  cfg.Articles,
		"templates": cfg.Templates,
		"styles":    cfg.Styles,
		"fonts":     cfg.Fonts,
		"images":    cfg.Images,
	} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if _, err := SourceDir(dir); err != nil {
			return fmt.Errorf("%w: %s=%s", ErrSourcePathInvalid, name, dir)
		}
	}
	if base := strings.TrimSpace(cfg.Site.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrBaseURLInvalid, base)
		}
	}
	for _, pattern := range cfg.Preserve {
		if _, err := path.Match(pattern, ""); err != nil || strings.TrimSpace(pattern) == "" || strings.HasPrefix(pattern, "/") {
			return fmt.Errorf("%w: %q", ErrPreservePatternInvalid, pattern)
		}
	}
	if cfg.Feed.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrFeedLimitInvalid, cfg.Feed.Limit)
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// SourceDir converts a configured directory into a slash separated path
// inside the project root.
func SourceDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return "", fmt.Errorf("%w: %s", ErrSourcePathInvalid, dir)
	}
	clean := filepath.ToSlash(filepath.Clean(strings.TrimSpace(dir)))
	if !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %s", ErrSourcePathInvalid, dir)
	}
	return clean, nil
}

// OutputPath resolves Output against Root.
func (cfg Config) OutputPath() string {
	if filepath.IsAbs(cfg.Output) {
		return filepath.Clean(cfg.Output)
	}
	return filepath.Join(cfg.RootPath(), cfg.Output)
}

// RootPath returns Root, defaulting to the working directory.
func (cfg Config) RootPath() string {
	if strings.TrimSpace(cfg.Root) == "" {
		return "."
	}
	return filepath.Clean(cfg.Root)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
