package bootstrap

import (
	"fmt"
	"io"
	"strings"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// LogFlags are the logging overrides shared by both commands.
type LogFlags struct {
	LogProvider string `name:"log-provider" help:"Logger provider (console or gologger)."`
	LogLevel    string `name:"log-level" help:"Minimum log level (trace, debug, info, warn, error)."`
	LogFormat   string `name:"log-format" help:"go-logger output format (json, console, pretty)."`
}

// Options captures the configuration sources of a CLI run. Empty strings
// keep the value from the config file or the defaults.
type Options struct {
	ConfigPath string
	Dir        string
	Output     string
	Locale     string
	HTML       bool
	Log        LogFlags

	Stdout         io.Writer
	Stderr         io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// LoadConfig reads the config file, when one is given, and applies the
// command line overrides.
func LoadConfig(opts Options) (articles.Config, error) {
	cfg, err := articles.LoadConfig(strings.TrimSpace(opts.ConfigPath))
	if err != nil {
		return articles.Config{}, err
	}

	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		cfg.Articles.Dir = dir
	}
	if output := strings.TrimSpace(opts.Output); output != "" {
		cfg.Index.Output = output
	}
	if locale := strings.TrimSpace(opts.Locale); locale != "" {
		cfg.Index.Locale = locale
	}
	if opts.HTML {
		cfg.Index.HTMLPreview = true
	}
	if provider := strings.TrimSpace(opts.Log.LogProvider); provider != "" {
		cfg.Logging.Provider = provider
	}
	if level := strings.TrimSpace(opts.Log.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.Log.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return articles.Config{}, err
	}
	return cfg, nil
}

// BuildModule loads the configuration and constructs the articles module
// writing reports to Stdout and logs to Stderr.
func BuildModule(opts Options) (*articles.Module, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	diOpts := []di.Option{
		di.WithStdout(opts.Stdout),
		di.WithLogWriter(opts.Stderr),
	}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := articles.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise articles module: %w", err)
	}
	return module, nil
}
