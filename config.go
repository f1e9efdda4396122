package publish

import "github.com/goliatone/go-publish/internal/runtimeconfig"

var (
	ErrArticlesDirRequired     = runtimeconfig.ErrArticlesDirRequired
	ErrOutputDirRequired       = runtimeconfig.ErrOutputDirRequired
	ErrSourcePathInvalid       = runtimeconfig.ErrSourcePathInvalid
	ErrBaseURLInvalid          = runtimeconfig.ErrBaseURLInvalid
	ErrFeedLimitInvalid        = runtimeconfig.ErrFeedLimitInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrPreservePatternInvalid  = runtimeconfig.ErrPreservePatternInvalid
)

type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	FeedConfig     = runtimeconfig.FeedConfig
	SitemapConfig  = runtimeconfig.SitemapConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads .env, the YAML file at path and PUBLISH_* overrides.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
