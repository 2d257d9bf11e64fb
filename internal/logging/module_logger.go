package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

const (
	rootModule     = "articles"
	analysisModule = "articles.analysis"
	indexModule    = "articles.index"
	markdownModule = "articles.markdown"
)

const (
	fieldArticlePath   = "article_path"
	fieldArticleAction = "action"
	fieldRunID         = "run_id"
)

// ModuleLogger returns a logger scoped to module, falling back to a no-op
// logger when provider is nil. The module name is attached as a field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// AnalysisLogger returns the logger used by the statistics job.
func AnalysisLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, analysisModule)
}

// IndexLogger returns the logger used by the index job.
func IndexLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexModule)
}

// MarkdownLogger returns the logger used while loading article files.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithArticleContext attaches the article path and the current action.
// Empty values are skipped.
func WithArticleContext(logger interfaces.Logger, path, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldArticlePath] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldArticleAction] = trimmed
	}
	return WithFields(logger, fields)
}

// WithRunID tags every entry of a single job run.
func WithRunID(logger interfaces.Logger, runID string) interfaces.Logger {
	if strings.TrimSpace(runID) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldRunID: runID})
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
