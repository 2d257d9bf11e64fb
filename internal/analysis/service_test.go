package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type capturingLogger struct {
	mu      sync.Mutex
	entries *[]logEntry
}

func newCapturingLogger() *capturingLogger {
	return &capturingLogger{entries: &[]logEntry{}}
}

func (l *capturingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *capturingLogger) Trace(msg string, args ...any) { l.record("trace", msg, args) }
func (l *capturingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *capturingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *capturingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *capturingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }
func (l *capturingLogger) Fatal(msg string, args ...any) { l.record("fatal", msg, args) }

func (l *capturingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *capturingLogger) find(level, msg string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, entry := range *l.entries {
		if entry.level == level && entry.msg == msg {
			out = append(out, entry)
		}
	}
	return out
}

func argValue(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == key {
			return args[i+1]
		}
	}
	return nil
}

func writeArticle(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestServiceAnalyzeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "b.md", "---\ntitle: Laravel 10 入門\nemoji: \"🚀\"\ntype: tech\ntopics: [\"Laravel\", \"PHP\"]\n---\nInstall Laravel 10 first.\n\n## Setup\n\n```php\necho 1;\n```\n")
	writeArticle(t, dir, "a.md", "---\ntitle: React vs Vue\ntopics: [\"React\"]\n---\nComparing ![logo](logo.png) them.\n")
	writeArticle(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	svc := NewService(Config{Pattern: "*.md"})
	stats, err := svc.Analyze(context.Background(), dir)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if stats.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 files, got %d", stats.Meta.TotalCount)
	}
	if len(stats.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(stats.Articles))
	}
	if stats.Articles[0].Filename != "a.md" || stats.Articles[1].Filename != "b.md" {
		t.Fatalf("expected lexical scan order, got %s, %s", stats.Articles[0].Filename, stats.Articles[1].Filename)
	}

	first := stats.Articles[0]
	if first.ContentType != ContentComparison || first.Images != 1 {
		t.Fatalf("unexpected first article %+v", first)
	}
	second := stats.Articles[1]
	if second.H2 != 1 || second.CodeBlocks != 1 || second.ContentType != ContentTutorial {
		t.Fatalf("unexpected second article %+v", second)
	}

	if stats.Types[DefaultDeclaredType] != 2 {
		t.Fatalf("expected both articles typed tech (one by default), got %v", stats.Types)
	}
	if stats.Emojis["🚀"] != 1 || len(stats.Emojis) != 1 {
		t.Fatalf("unexpected emojis %v", stats.Emojis)
	}
	if stats.TopicsNormalized["php"] != 1 || stats.TopicsNormalized["react"] != 1 {
		t.Fatalf("unexpected normalized topics %v", stats.TopicsNormalized)
	}
	if stats.Versions["Laravel 10"] != 1 {
		t.Fatalf("expected Laravel 10 version, got %v", stats.Versions)
	}
	if stats.Meta.TotalChars != first.Chars+second.Chars {
		t.Fatalf("total_chars mismatch: %d", stats.Meta.TotalChars)
	}
}

func TestServiceAnalyzeSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "good.md", "---\ntitle: Fine\n---\nabcdef\n")
	writeArticle(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nbody\n")
	if err := os.WriteFile(filepath.Join(dir, "binary.md"), []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatalf("write binary: %v", err)
	}

	logger := newCapturingLogger()
	svc := NewService(Config{}, WithLogger(logger))
	stats, err := svc.Analyze(context.Background(), dir)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if stats.Meta.TotalCount != 3 {
		t.Fatalf("expected every discovered file counted, got %d", stats.Meta.TotalCount)
	}
	if len(stats.Articles) != 1 || stats.Articles[0].Filename != "good.md" {
		t.Fatalf("expected only good.md, got %+v", stats.Articles)
	}
	if stats.Meta.AvgChars != 2 {
		t.Fatalf("expected avg 6/3 = 2, got %d", stats.Meta.AvgChars)
	}

	skipped := logger.find("error", "analysis.file.skipped")
	if len(skipped) != 2 {
		t.Fatalf("expected 2 skip entries, got %d", len(skipped))
	}
	files := map[any]bool{}
	for _, entry := range skipped {
		files[argValue(entry.args, "file")] = true
		if argValue(entry.args, "error") == nil {
			t.Fatalf("expected error field on %+v", entry)
		}
	}
	if !files[filepath.Join(dir, "broken.md")] || !files[filepath.Join(dir, "binary.md")] {
		t.Fatalf("unexpected skipped files %v", files)
	}

	completed := logger.find("info", "analysis.completed")
	if len(completed) != 1 || argValue(completed[0].args, "skipped") != 2 {
		t.Fatalf("expected completion entry with skipped=2, got %+v", completed)
	}
}

func TestServiceAnalyzeEmptyDirectory(t *testing.T) {
	stats, err := NewService(Config{}).Analyze(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if stats.Meta.TotalCount != 0 || stats.Meta.AvgChars != 0 || len(stats.Articles) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats.Meta)
	}
}

func TestServiceAnalyzeMissingDirectory(t *testing.T) {
	_, err := NewService(Config{}).Analyze(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestServiceAnalyzeCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.md", "body")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewService(Config{}).Analyze(ctx, dir); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
