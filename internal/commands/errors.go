package commands

import (
	"context"
	"errors"

	"github.com/goliatone/go-articles/internal/markdown"
	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to the errors returned by Handler.Execute.
const (
	CodeValidationFailed  = "COMMAND_VALIDATION_FAILED"
	CodeContextCanceled   = "COMMAND_CONTEXT_CANCELED"
	CodeContextTimeout    = "COMMAND_CONTEXT_TIMEOUT"
	CodeContextError      = "COMMAND_CONTEXT_ERROR"
	CodeExecutionFailed   = "COMMAND_EXECUTION_FAILED"
	CodeDirectoryNotFound = "ARTICLES_DIRECTORY_NOT_FOUND"
)

// ErrDirectoryNotFound is the loader sentinel the handlers report as a
// not-found outcome. errors.Is still matches it on the wrapped error.
var ErrDirectoryNotFound = markdown.ErrDirectoryNotFound

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "article command rejected").
		WithTextCode(CodeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "article job cancelled").
			WithTextCode(CodeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "article job deadline exceeded").
			WithTextCode(CodeContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "article job context error").
			WithTextCode(CodeContextError)
	}
}

// wrapExecuteError categorises a job failure. A missing article directory
// is a not-found outcome, anything else a command failure.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, ErrDirectoryNotFound) {
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "article directory not found").
			WithTextCode(CodeDirectoryNotFound)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "article job failed").
		WithTextCode(CodeExecutionFailed)
}

// executeStatus maps a wrapped execution error onto its telemetry status.
func executeStatus(err error) TelemetryStatus {
	if goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		return TelemetryStatusNotFound
	}
	return TelemetryStatusFailed
}
