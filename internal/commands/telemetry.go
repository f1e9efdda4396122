package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-publish/pkg/interfaces"
)

// TelemetryStatus is the coarse result of one execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo is handed to the telemetry callback after every execution
// whose message passed validation. Error is already tagged with a go-errors
// category. Logger carries the command fields.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry observes finished executions.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// LogTelemetry writes a single "command.finished" entry per execution on
// info.Logger. Successes log at Info, cancelled or expired contexts at Warn
// and every other failure at Error. Handlers use it unless WithTelemetry
// replaces it.
func LogTelemetry[T command.Message](_ context.Context, _ T, info TelemetryInfo) {
	if info.Logger == nil {
		return
	}
	args := []any{
		"status", string(info.Status),
		"duration", info.Duration.Round(time.Millisecond).String(),
	}
	switch info.Status {
	case TelemetryStatusSuccess:
		info.Logger.Info("command.finished", args...)
	case TelemetryStatusContextError:
		info.Logger.Warn("command.finished", append(args, "error", info.Error)...)
	default:
		info.Logger.Error("command.finished", append(args, "error", info.Error)...)
	}
}
