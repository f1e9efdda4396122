package runtimeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides.
const EnvPrefix = "PUBLISH_"

// DotEnvFile is read from the working directory before overrides apply.
const DotEnvFile = ".env"

// Load builds a Config from defaults, the YAML file at path and PUBLISH_*
// environment variables, in that order. A missing file leaves the defaults
// in place; Root then defaults to the file's directory.
func Load(path string) (Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("publish config: read %s: %w", DotEnvFile, err)
	}

	cfg := DefaultConfig()
	if path = strings.TrimSpace(path); path != "" {
		found, err := decodeFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
		if found {
			cfg.Root = resolveRoot(filepath.Dir(path), cfg.Root)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("publish config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("publish config: decode %s: %w", path, err)
	}
	return true, nil
}

func resolveRoot(configDir, root string) string {
	root = strings.TrimSpace(root)
	if root == "" || root == "." {
		return configDir
	}
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(configDir, root)
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		"ROOT":            &cfg.Root,
		"ARTICLES":        &cfg.Articles,
		"OUTPUT":          &cfg.Output,
		"TEMPLATES":       &cfg.Templates,
		"STYLES":          &cfg.Styles,
		"FONTS":           &cfg.Fonts,
		"IMAGES":          &cfg.Images,
		"SITE_TITLE":      &cfg.Site.Title,
		"BASE_URL":        &cfg.Site.BaseURL,
		"LANGUAGE":        &cfg.Site.Language,
		"HIGHLIGHT_STYLE": &cfg.Markdown.HighlightStyle,
		"LOG_PROVIDER":    &cfg.Logging.Provider,
		"LOG_LEVEL":       &cfg.Logging.Level,
		"LOG_FORMAT":      &cfg.Logging.Format,
	}
	for key, dst := range strs {
		if value, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(value)
		}
	}

	bools := map[string]*bool{
		"INCLUDE_DRAFTS":      &cfg.IncludeDrafts,
		"MARKDOWN_UNSAFE":     &cfg.Markdown.Unsafe,
		"MARKDOWN_HARD_WRAPS": &cfg.Markdown.HardWraps,
		"FEED":                &cfg.Feed.Enabled,
		"SITEMAP":             &cfg.Sitemap.Enabled,
		"ROBOTS":              &cfg.Sitemap.Robots,
	}
	for key, dst := range bools {
		value, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("publish config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = parsed
	}

	if value, ok := lookup(EnvPrefix + "FEED_LIMIT"); ok && strings.TrimSpace(value) != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("publish config: %sFEED_LIMIT: %w", EnvPrefix, err)
		}
		cfg.Feed.Limit = limit
	}

	if value, ok := lookup(EnvPrefix + "PRESERVE"); ok {
		cfg.Preserve = nil
		for _, pattern := range strings.Split(value, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				cfg.Preserve = append(cfg.Preserve, pattern)
			}
		}
	}
	return nil
}
