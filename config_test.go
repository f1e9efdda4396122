package publish_test

import (
	"errors"
	"testing"

	publish "github.com/goliatone/go-publish"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := publish.DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestConfigValidateRejectsEscapingSource(t *testing.T) {
	cfg := publish.DefaultConfig()
	cfg.Images = "../images"

	if err := cfg.Validate(); !errors.Is(err, publish.ErrSourcePathInvalid) {
		t.Fatalf("expected ErrSourcePathInvalid, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := publish.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, publish.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := publish.DefaultConfig()
	cfg.Output = ""

	if _, err := publish.New(cfg); !errors.Is(err, publish.ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}
