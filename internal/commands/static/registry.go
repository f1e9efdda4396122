package staticcmd

import (
	"github.com/goliatone/go-publish/internal/commands"
	"github.com/goliatone/go-publish/internal/generator"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// HandlerSet groups the static site handlers.
type HandlerSet struct {
	Build *BuildSiteHandler
	Clean *CleanSiteHandler
}

// NewHandlerSet builds both handlers with a logger scoped to the "static" command module.
func NewHandlerSet(service generator.Service, provider interfaces.LoggerProvider) *HandlerSet {
	logger := commands.CommandLogger(provider, "static")
	return &HandlerSet{
		Build: NewBuildSiteHandler(service, logger),
		Clean: NewCleanSiteHandler(service, logger),
	}
}
