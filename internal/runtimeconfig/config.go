package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrArticlesDirRequired = errors.New("articles config: articles directory is required")
var ErrArticlesPatternInvalid = errors.New("articles config: file pattern is invalid")
var ErrIndexOutputRequired = errors.New("articles config: index output path is required")
var ErrIndexSummaryLengthInvalid = errors.New("articles config: index summary length must be positive")
var ErrIndexLocaleUnknown = errors.New("articles config: index locale is not supported")
var ErrLoggingProviderRequired = errors.New("articles config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("articles config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("articles config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("articles config: logging format is invalid")

// Config aggregates the settings of both batch jobs.
type Config struct {
	Articles ArticlesConfig `yaml:"articles"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Index    IndexConfig    `yaml:"index"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ArticlesConfig locates the article files.
type ArticlesConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// AnalysisConfig controls the statistics job.
type AnalysisConfig struct {
	// ValidateReport checks the JSON report against the embedded schema
	// before it is written.
	ValidateReport bool `yaml:"validate_report"`
}

// IndexConfig controls the index job.
type IndexConfig struct {
	Output        string       `yaml:"output"`
	SummaryLength int          `yaml:"summary_length"`
	Locale        string       `yaml:"locale"`
	HTMLPreview   bool         `yaml:"html_preview"`
	Parser        ParserConfig `yaml:"parser"`
}

// ParserConfig mirrors interfaces.ParseOptions for the HTML preview.
type ParserConfig struct {
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Articles: ArticlesConfig{
			Dir:     "articles",
			Pattern: "*.md",
		},
		Analysis: AnalysisConfig{
			ValidateReport: true,
		},
		Index: IndexConfig{
			Output:        filepath.Join(".agents", "docs", "article_index.md"),
			SummaryLength: 100,
			Locale:        "en",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Load reads a YAML file over DefaultConfig and validates the result. An
// empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("articles config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("articles config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Articles.Dir) == "" {
		return ErrArticlesDirRequired
	}
	if pattern := strings.TrimSpace(cfg.Articles.Pattern); pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: %s", ErrArticlesPatternInvalid, pattern)
		}
	}
	if strings.TrimSpace(cfg.Index.Output) == "" {
		return ErrIndexOutputRequired
	}
	if cfg.Index.SummaryLength <= 0 {
		return fmt.Errorf("%w: %d", ErrIndexSummaryLengthInvalid, cfg.Index.SummaryLength)
	}
	if locale := strings.TrimSpace(cfg.Index.Locale); locale != "" && !isSupportedLocale(locale) {
		return fmt.Errorf("%w: %s", ErrIndexLocaleUnknown, locale)
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isSupportedLocale(locale string) bool {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en", "ja":
		return true
	default:
		return false
	}
}
