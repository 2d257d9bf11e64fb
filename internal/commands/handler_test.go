package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-articles/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct{}

func (testMessage) Type() string { return "articles.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "articles.test.invalid" }

func (invalidMessage) Validate() error {
	return validationError()
}

func validationError() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category to propagate, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

type fieldsLogger struct {
	fields []map[string]any
	errors []string
	warns  []string
	infos  []string
}

func (l *fieldsLogger) Trace(string, ...any) {}
func (l *fieldsLogger) Debug(string, ...any) {}
func (l *fieldsLogger) Info(msg string, _ ...any) {
	l.infos = append(l.infos, msg)
}
func (l *fieldsLogger) Warn(msg string, _ ...any) {
	l.warns = append(l.warns, msg)
}
func (l *fieldsLogger) Error(msg string, _ ...any) {
	l.errors = append(l.errors, msg)
}
func (l *fieldsLogger) Fatal(string, ...any) {}

func (l *fieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.fields = append(l.fields, fields)
	return l
}

func (l *fieldsLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestHandlerAttachesMessageFields(t *testing.T) {
	logger := &fieldsLogger{}
	h := NewHandler[testMessage](func(context.Context, testMessage) error { return nil },
		WithLogger[testMessage](logger),
		WithOperation[testMessage]("articles.test"),
		WithMessageFields(func(testMessage) map[string]any {
			return map[string]any{"directory": "articles"}
		}),
	)

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(logger.fields) == 0 {
		t.Fatal("expected fields to be attached")
	}
	fields := logger.fields[0]
	if fields["command"] != "articles.test.message" || fields["operation"] != "articles.test" || fields["directory"] != "articles" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if len(logger.infos) != 1 || logger.infos[0] != "command.execute.success" {
		t.Fatalf("expected success entry, got %v", logger.infos)
	}
}

func TestHandlerTelemetryReportsOutcome(t *testing.T) {
	execErr := errors.New("boom")
	var infos []TelemetryInfo
	h := NewHandler[testMessage](func(context.Context, testMessage) error { return execErr },
		WithTelemetry(func(_ context.Context, _ testMessage, info TelemetryInfo) {
			infos = append(infos, info)
		}),
	)

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, execErr) {
		t.Fatalf("expected wrapped exec error, got %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("expected one telemetry callback, got %d", len(infos))
	}
	if infos[0].Status != TelemetryStatusFailed || infos[0].Command != "articles.test.message" {
		t.Fatalf("unexpected telemetry %+v", infos[0])
	}
}

func TestDefaultTelemetryLogsFailures(t *testing.T) {
	logger := &fieldsLogger{}
	h := NewHandler[testMessage](func(context.Context, testMessage) error { return errors.New("boom") },
		WithTelemetry(DefaultTelemetry[testMessage](logger)),
	)

	if err := h.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected error")
	}
	if len(logger.errors) != 1 || logger.errors[0] != "command.execute.failed" {
		t.Fatalf("expected failure entry, got %v", logger.errors)
	}
}

func TestHandlerReportsMissingDirectoryAsNotFound(t *testing.T) {
	logger := &fieldsLogger{}
	h := NewHandler[testMessage](func(context.Context, testMessage) error {
		return fmt.Errorf("analyze articles: %w", fmt.Errorf("%w: articles", ErrDirectoryNotFound))
	}, WithLogger[testMessage](logger))

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found category, got %v", err)
	}
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound to stay matchable, got %v", err)
	}
	var wrapped *goerrors.Error
	if !errors.As(err, &wrapped) || wrapped.TextCode != CodeDirectoryNotFound {
		t.Fatalf("expected text code %s, got %v", CodeDirectoryNotFound, err)
	}
	if len(logger.errors) != 0 {
		t.Fatalf("expected no error entries, got %v", logger.errors)
	}
	if len(logger.warns) != 1 || logger.warns[0] != "command.execute.not_found" {
		t.Fatalf("expected not found warning, got %v", logger.warns)
	}
}

func TestDefaultTelemetryWarnsOnMissingDirectory(t *testing.T) {
	logger := &fieldsLogger{}
	var status TelemetryStatus
	telemetry := DefaultTelemetry[testMessage](logger)
	h := NewHandler[testMessage](func(context.Context, testMessage) error { return ErrDirectoryNotFound },
		WithTelemetry(func(ctx context.Context, msg testMessage, info TelemetryInfo) {
			status = info.Status
			telemetry(ctx, msg, info)
		}),
	)

	if err := h.Execute(context.Background(), testMessage{}); !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
	if status != TelemetryStatusNotFound {
		t.Fatalf("expected not_found status, got %q", status)
	}
	if len(logger.errors) != 0 || len(logger.warns) != 1 {
		t.Fatalf("expected a single warning, got errors=%v warns=%v", logger.errors, logger.warns)
	}
}
