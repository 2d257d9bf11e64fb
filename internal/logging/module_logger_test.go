package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "articles.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, indexModule)

	if len(provider.requested) != 1 || provider.requested[0] != indexModule {
		t.Fatalf("expected module %s, got %v", indexModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != indexModule {
		t.Fatalf("expected module field %s, got %v", indexModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestAnalysisLoggerRequestsAnalysisModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = AnalysisLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != analysisModule {
		t.Fatalf("expected analysis module request, got %v", provider.requested)
	}
}

func TestWithArticleContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithArticleContext(rec, " articles/a.md ", "")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldArticlePath] != "articles/a.md" {
		t.Fatalf("expected trimmed path, got %v", rec.fields[0])
	}
	if _, ok := rec.fields[0][fieldArticleAction]; ok {
		t.Fatalf("expected empty action to be skipped, got %v", rec.fields[0])
	}
}

func TestWithRunIDIgnoresBlank(t *testing.T) {
	rec := &recordingLogger{}
	WithRunID(rec, "  ")
	if len(rec.fields) != 0 {
		t.Fatalf("expected blank run id to be ignored, got %v", rec.fields)
	}
	WithRunID(rec, "run-1")
	if len(rec.fields) != 1 || rec.fields[0][fieldRunID] != "run-1" {
		t.Fatalf("expected run id field, got %v", rec.fields)
	}
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("expected merged fields, got %v", fields)
	}
	fields["a"] = 3
	if ContextFields(ctx)["a"] != 1 {
		t.Fatal("expected ContextFields to return a copy")
	}
}
