package indexcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-articles/internal/commands"
	"github.com/goliatone/go-articles/internal/index"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const generateOperation = "index.generate"

var _ command.Commander[GenerateIndexCommand] = (*GenerateIndexHandler)(nil)

// Generator is the index job the handler drives.
type Generator interface {
	Generate(ctx context.Context, dir, output string) (*index.Result, error)
}

// GenerateIndexHandler writes the index and reports where it went.
type GenerateIndexHandler struct {
	inner *commands.Handler[GenerateIndexCommand]
}

// NewGenerateIndexHandler creates a handler that prints a one line summary
// of each run to out.
func NewGenerateIndexHandler(service Generator, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateIndexCommand]) *GenerateIndexHandler {
	baseLogger := commands.EnsureLogger(logger)
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg GenerateIndexCommand) error {
		runID := msg.RunID
		if runID == uuid.Nil {
			runID = uuid.New()
		}
		ctx = logging.ContextWithFields(ctx, map[string]any{"run_id": runID.String()})

		result, err := service.Generate(ctx, msg.Directory, msg.Output)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "Generated index at %s (%d articles)\n", result.Output, len(result.Rows)); err != nil {
			return err
		}
		if result.Preview != "" {
			if _, err := fmt.Fprintf(out, "Generated preview at %s\n", result.Preview); err != nil {
				return err
			}
		}

		logging.WithRunID(baseLogger, runID.String()).Info("index.command.generate.completed",
			"output", result.Output,
			"rows", len(result.Rows),
			"skipped", result.Skipped,
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateIndexCommand]{
		commands.WithLogger[GenerateIndexCommand](baseLogger),
		commands.WithOperation[GenerateIndexCommand](generateOperation),
		commands.WithMessageFields(func(msg GenerateIndexCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
				"output":    msg.Output,
			}
			if msg.RunID != uuid.Nil {
				fields["run_id"] = msg.RunID.String()
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateIndexCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateIndexHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateIndexCommand].
func (h *GenerateIndexHandler) Execute(ctx context.Context, msg GenerateIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
