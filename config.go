package articles

import "github.com/goliatone/go-articles/internal/runtimeconfig"

var (
	ErrArticlesDirRequired       = runtimeconfig.ErrArticlesDirRequired
	ErrArticlesPatternInvalid    = runtimeconfig.ErrArticlesPatternInvalid
	ErrIndexOutputRequired       = runtimeconfig.ErrIndexOutputRequired
	ErrIndexSummaryLengthInvalid = runtimeconfig.ErrIndexSummaryLengthInvalid
	ErrIndexLocaleUnknown        = runtimeconfig.ErrIndexLocaleUnknown
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ArticlesConfig = runtimeconfig.ArticlesConfig
	AnalysisConfig = runtimeconfig.AnalysisConfig
	IndexConfig    = runtimeconfig.IndexConfig
	ParserConfig   = runtimeconfig.ParserConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the built-in settings: articles/*.md in, the index
// at .agents/docs/article_index.md, console logging at info.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
