package di

import (
	"testing"

	"github.com/goliatone/go-articles/internal/logging/gologger"
	"github.com/goliatone/go-articles/internal/runtimeconfig"
)

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}

	logger := provider.GetLogger("articles.test")
	if logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Index.Locale = "fr"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected invalid config error")
	}
}

func TestNewContainerBuildsServices(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.AnalysisService() == nil || container.IndexService() == nil || container.Reporter() == nil {
		t.Fatal("expected services to be configured")
	}
	if container.AnalyzeHandler() == nil || container.IndexHandler() == nil {
		t.Fatal("expected command handlers to be configured")
	}
	if container.MarkdownParser() == nil {
		t.Fatal("expected markdown parser")
	}
}
