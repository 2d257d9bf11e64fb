package di

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-articles/internal/analysis"
	"github.com/goliatone/go-articles/internal/commands"
	analyzecmd "github.com/goliatone/go-articles/internal/commands/analyze"
	indexcmd "github.com/goliatone/go-articles/internal/commands/index"
	"github.com/goliatone/go-articles/internal/index"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/logging/console"
	"github.com/goliatone/go-articles/internal/logging/gologger"
	"github.com/goliatone/go-articles/internal/markdown"
	"github.com/goliatone/go-articles/internal/runtimeconfig"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Container wires configuration, logging, the two job services and their
// command handlers.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	stdout         io.Writer
	parser         interfaces.MarkdownParser

	analysisService *analysis.Service
	reporter        *analysis.Reporter
	indexService    *index.Service

	analyzeHandler *analyzecmd.AnalyzeDirectoryHandler
	indexHandler   *indexcmd.GenerateIndexHandler
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Logging.Provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter sets where the console provider writes (stderr by default).
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithStdout sets where reports and run summaries are written.
func WithStdout(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.stdout = w
		}
	}
}

// WithMarkdownParser overrides the goldmark parser used for HTML previews.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		logWriter: os.Stderr,
		stdout:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := c.configureLoggerProvider()
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Index.Parser.Extensions,
			HardWraps:  cfg.Index.Parser.HardWraps,
			SafeMode:   cfg.Index.Parser.SafeMode,
		})
	}

	if err := c.configureServices(); err != nil {
		return nil, err
	}
	c.configureHandlers()
	return c, nil
}

func (c *Container) configureLoggerProvider() (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("di: %w", err)
		}
		return provider, nil
	default:
		level, _ := console.ParseLevel(c.Config.Logging.Level)
		return console.NewProvider(console.Options{
			Writer:   c.logWriter,
			MinLevel: &level,
		}), nil
	}
}

func (c *Container) configureServices() error {
	c.analysisService = analysis.NewService(
		analysis.Config{Pattern: c.Config.Articles.Pattern},
		analysis.WithLogger(logging.AnalysisLogger(c.loggerProvider)),
	)
	c.reporter = analysis.NewReporter(c.Config.Analysis.ValidateReport)

	svc, err := index.NewService(index.Config{
		Pattern:       c.Config.Articles.Pattern,
		SummaryLength: c.Config.Index.SummaryLength,
		Locale:        c.Config.Index.Locale,
		HTMLPreview:   c.Config.Index.HTMLPreview,
	},
		index.WithLogger(logging.IndexLogger(c.loggerProvider)),
		index.WithParser(c.parser),
	)
	if err != nil {
		return fmt.Errorf("di: %w", err)
	}
	c.indexService = svc
	return nil
}

func (c *Container) configureHandlers() {
	c.analyzeHandler = analyzecmd.NewAnalyzeDirectoryHandler(
		c.analysisService,
		c.reporter,
		c.stdout,
		commands.CommandLogger(c.loggerProvider, "analysis"),
	)
	c.indexHandler = indexcmd.NewGenerateIndexHandler(
		c.indexService,
		c.stdout,
		commands.CommandLogger(c.loggerProvider, "index"),
	)
}

// LoggerProvider returns the active logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// MarkdownParser returns the parser used for HTML previews.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// AnalysisService returns the statistics job.
func (c *Container) AnalysisService() *analysis.Service {
	return c.analysisService
}

// Reporter returns the statistics report writer.
func (c *Container) Reporter() *analysis.Reporter {
	return c.reporter
}

// IndexService returns the index job.
func (c *Container) IndexService() *index.Service {
	return c.indexService
}

// AnalyzeHandler returns the command handler of the statistics job.
func (c *Container) AnalyzeHandler() *analyzecmd.AnalyzeDirectoryHandler {
	return c.analyzeHandler
}

// IndexHandler returns the command handler of the index job.
func (c *Container) IndexHandler() *indexcmd.GenerateIndexHandler {
	return c.indexHandler
}
