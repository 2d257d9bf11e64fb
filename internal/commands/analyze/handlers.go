package analyzecmd

import (
	"context"
	"io"

	"github.com/goliatone/go-articles/internal/analysis"
	"github.com/goliatone/go-articles/internal/commands"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const analyzeOperation = "analysis.analyze_directory"

var _ command.Commander[AnalyzeDirectoryCommand] = (*AnalyzeDirectoryHandler)(nil)

// Analyzer is the statistics job the handler drives.
type Analyzer interface {
	Analyze(ctx context.Context, dir string) (*analysis.Stats, error)
}

// AnalyzeDirectoryHandler runs the statistics job and writes its report.
type AnalyzeDirectoryHandler struct {
	inner *commands.Handler[AnalyzeDirectoryCommand]
}

// NewAnalyzeDirectoryHandler creates a handler that writes reports to out.
func NewAnalyzeDirectoryHandler(service Analyzer, reporter *analysis.Reporter, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[AnalyzeDirectoryCommand]) *AnalyzeDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)
	if reporter == nil {
		reporter = analysis.NewReporter(false)
	}
	if out == nil {
		out = io.Discard
	}

	exec := func(ctx context.Context, msg AnalyzeDirectoryCommand) error {
		format, err := analysis.ParseFormat(msg.Format)
		if err != nil {
			return err
		}

		runID := msg.RunID
		if runID == uuid.Nil {
			runID = uuid.New()
		}
		ctx = logging.ContextWithFields(ctx, map[string]any{"run_id": runID.String()})

		stats, err := service.Analyze(ctx, msg.Directory)
		if err != nil {
			return err
		}
		if err := reporter.Write(out, stats, format); err != nil {
			return err
		}

		logging.WithRunID(baseLogger, runID.String()).Info("analysis.command.analyze_directory.completed",
			"total_count", stats.Meta.TotalCount,
			"articles", len(stats.Articles),
			"format", string(format),
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[AnalyzeDirectoryCommand]{
		commands.WithLogger[AnalyzeDirectoryCommand](baseLogger),
		commands.WithOperation[AnalyzeDirectoryCommand](analyzeOperation),
		commands.WithMessageFields(func(msg AnalyzeDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Format != "" {
				fields["format"] = msg.Format
			}
			if msg.RunID != uuid.Nil {
				fields["run_id"] = msg.RunID.String()
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[AnalyzeDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AnalyzeDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AnalyzeDirectoryCommand].
func (h *AnalyzeDirectoryHandler) Execute(ctx context.Context, msg AnalyzeDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
