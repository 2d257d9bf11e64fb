package analysis

import (
	"context"
	"fmt"

	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/markdown"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// ErrDirectoryNotFound is returned by Analyze when the article directory
// does not exist.
var ErrDirectoryNotFound = markdown.ErrDirectoryNotFound

// Config controls file discovery.
type Config struct {
	Pattern string
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for progress and per-file diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service runs the statistics job over a directory.
type Service struct {
	cfg    Config
	logger interfaces.Logger
}

// NewService constructs a Service.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze loads every matching file of dir, extracts its features and folds
// them into a Stats. Files that fail to load are logged and skipped; only a
// missing directory or a failed listing aborts the run.
func (s *Service) Analyze(ctx context.Context, dir string) (*Stats, error) {
	loader, err := markdown.OpenDir(dir, s.cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	files, err := loader.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	logger := s.logger.WithContext(ctx)
	stats := NewStats()
	stats.Meta.TotalCount = len(files)
	if len(files) == 0 {
		logger.Info("analysis.completed", "directory", dir, "files", 0)
		return stats, nil
	}

	skipped := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileLogger := logging.WithArticleContext(logger, file.Path, "analyze")
		doc, err := loader.LoadFile(ctx, file)
		if err != nil {
			skipped++
			fileLogger.Error("analysis.file.skipped", "file", file.Path, "error", err)
			continue
		}

		article := Extract(doc.FileName, doc.FrontMatter, doc.Body)
		stats.Add(article, doc.FrontMatter)
		fileLogger.Debug("analysis.file.processed",
			"chars", article.Chars,
			"content_type", article.ContentType,
		)
	}
	stats.Finalize()

	logger.Info("analysis.completed",
		"directory", dir,
		"files", len(files),
		"articles", len(stats.Articles),
		"skipped", skipped,
		"total_chars", stats.Meta.TotalChars,
		"top_content_type", topKey(stats.ContentTypes),
	)
	return stats, nil
}

func topKey(freq Frequencies) string {
	entries := freq.Sorted()
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Key
}
