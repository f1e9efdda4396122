package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// outcome classifies one execution and carries the go-errors tagging applied
// to its error.
type outcome struct {
	status   TelemetryStatus
	category goerrors.Category
	code     string
	message  string
}

var (
	rejected = outcome{
		status:   TelemetryStatusFailed,
		category: goerrors.CategoryValidation,
		code:     "COMMAND_VALIDATION_FAILED",
		message:  "command validation failed",
	}
	cancelled = outcome{
		status:   TelemetryStatusContextError,
		category: goerrors.CategoryCommand,
		code:     "COMMAND_CONTEXT_CANCELED",
		message:  "command execution cancelled",
	}
	timedOut = outcome{
		status:   TelemetryStatusContextError,
		category: goerrors.CategoryCommand,
		code:     "COMMAND_CONTEXT_TIMEOUT",
		message:  "command execution deadline exceeded",
	}
	failed = outcome{
		status:   TelemetryStatusFailed,
		category: goerrors.CategoryCommand,
		code:     "COMMAND_EXECUTION_FAILED",
		message:  "command execution failed",
	}
)

// classify picks the outcome for an error returned by a command function or
// left on its context. A nil error is a success.
func classify(err error) outcome {
	switch {
	case err == nil:
		return outcome{status: TelemetryStatusSuccess}
	case errors.Is(err, context.Canceled):
		return cancelled
	case errors.Is(err, context.DeadlineExceeded):
		return timedOut
	default:
		return failed
	}
}

// wrap tags err with the outcome's category and text code. Errors that
// already carry a go-errors category are returned as they are so domain
// codes such as ARTICLE_DATE_INVALID reach the caller.
func (o outcome) wrap(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, o.category, o.message).WithTextCode(o.code)
}
