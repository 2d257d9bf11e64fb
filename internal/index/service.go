package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/markdown"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// ErrDirectoryNotFound is returned by Generate when the article directory
// does not exist. Nothing is written in that case.
var ErrDirectoryNotFound = markdown.ErrDirectoryNotFound

const previewExtension = ".html"

// Config controls discovery, summaries and the rendered chrome.
type Config struct {
	Pattern       string
	SummaryLength int
	Locale        string
	// HTMLPreview also writes the index rendered to HTML next to the
	// Markdown output. It requires a parser.
	HTMLPreview bool
}

// Result describes a finished run.
type Result struct {
	Output  string
	Preview string
	Rows    []Row
	Skipped int
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

// WithParser sets the Markdown renderer used for the HTML preview.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// Service runs the index job.
type Service struct {
	cfg    Config
	labels Labels
	logger interfaces.Logger
	parser interfaces.MarkdownParser
}

// NewService constructs a Service. It fails only for an unknown locale.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	labels, err := LabelsFor(cfg.Locale)
	if err != nil {
		return nil, err
	}
	if cfg.SummaryLength <= 0 {
		cfg.SummaryLength = DefaultSummaryLength
	}
	s := &Service{
		cfg:    cfg,
		labels: labels,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.HTMLPreview && s.parser == nil {
		s.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}
	return s, nil
}

// Generate writes the index of dir to output, overwriting it and creating
// missing parent directories. Rows are ordered newest first by modification
// time; files with equal times keep their name order. Files that fail to
// load are logged and left out.
func (s *Service) Generate(ctx context.Context, dir, output string) (*Result, error) {
	loader, err := markdown.OpenDir(dir, s.cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	files, err := loader.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	outputDir, err := filepath.Abs(filepath.Dir(output))
	if err != nil {
		return nil, fmt.Errorf("index: resolve output %s: %w", output, err)
	}

	logger := s.logger.WithContext(ctx)
	result := &Result{Output: output, Rows: make([]Row, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileLogger := logging.WithArticleContext(logger, file.Path, "index")
		row, err := s.buildRow(ctx, loader, file, outputDir)
		if err != nil {
			result.Skipped++
			fileLogger.Error("index.file.skipped", "file", file.Path, "error", err)
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	document := Render(result.Rows, s.labels)
	if err := writeFile(output, []byte(document)); err != nil {
		return nil, err
	}

	if s.cfg.HTMLPreview {
		preview, err := s.writePreview(output, document)
		if err != nil {
			return nil, err
		}
		result.Preview = preview
	}

	logger.Info("index.generated",
		"directory", dir,
		"output", output,
		"rows", len(result.Rows),
		"skipped", result.Skipped,
	)
	return result, nil
}

func (s *Service) buildRow(ctx context.Context, loader *markdown.Loader, file markdown.File, outputDir string) (Row, error) {
	doc, err := loader.LoadFile(ctx, file)
	if err != nil {
		return Row{}, err
	}
	link, err := relativeLink(outputDir, file.Path)
	if err != nil {
		return Row{}, err
	}
	summary := ExtractSummary(doc.Body, s.cfg.SummaryLength)
	return NewRow(doc.FrontMatter, link, summary), nil
}

func (s *Service) writePreview(output, document string) (string, error) {
	html, err := s.parser.Parse([]byte(document))
	if err != nil {
		return "", fmt.Errorf("index: render preview: %w", err)
	}
	preview := strings.TrimSuffix(output, filepath.Ext(output)) + previewExtension
	if preview == output {
		preview = output + previewExtension
	}
	if err := writeFile(preview, html); err != nil {
		return "", err
	}
	return preview, nil
}

// relativeLink returns the slash separated path of target as seen from dir.
func relativeLink(dir, target string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", target, err)
	}
	rel, err := filepath.Rel(dir, absTarget)
	if err != nil {
		return "", fmt.Errorf("relative path %s: %w", target, err)
	}
	return filepath.ToSlash(rel), nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("index: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("index: write %s: %w", path, err)
	}
	return nil
}
