package staticcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-publish/internal/generator"
)

const (
	buildSiteMessageType = "publish.static.build"
	cleanSiteMessageType = "publish.static.clean"
)

// ResultCallback receives build results produced by generator operations. The callback is optional
// and is invoked synchronously from the handler when a BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution that generated a BuildResult.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand runs a full site build. DryRun renders everything in
// memory and reports the outputs through ResultCallback without touching
// the output directory.
type BuildSiteCommand struct {
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate rejects dry runs nobody can observe.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.DryRun && m.ResultCallback == nil {
		errs["result_callback"] = validation.NewError("publish.static.build.callback_required", "dry runs require a result callback")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand removes the output directory.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }
