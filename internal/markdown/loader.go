package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

// ErrDirectoryNotFound is returned when the article directory does not exist.
var ErrDirectoryNotFound = errors.New("markdown loader: directory not found")

// ErrInvalidEncoding is returned for files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// LoaderConfig configures how article files are discovered.
type LoaderConfig struct {
	// BasePath is the directory the filesystem is rooted at. It prefixes
	// every FilePath the loader reports.
	BasePath string
	// Pattern selects files by base name (defaults to "*.md").
	Pattern string
}

// File is a discovered article file that has not been read yet.
type File struct {
	Path    string
	Name    string
	ModTime time.Time
}

// Loader lists and reads article files from a single flat directory.
type Loader struct {
	fs       fs.FS
	basePath string
	pattern  string
}

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:       filesystem,
		basePath: filepath.Clean(cfg.BasePath),
		pattern:  pattern,
	}
}

// OpenDir returns a Loader rooted at dir on the host filesystem, or an error
// wrapping ErrDirectoryNotFound when dir is missing or not a directory.
func OpenDir(dir, pattern string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("markdown loader stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}
	return NewLoader(os.DirFS(dir), LoaderConfig{BasePath: dir, Pattern: pattern}), nil
}

// List returns the files in the root directory whose base name matches the
// pattern, in lexical order. Sub-directories and hidden files are skipped.
func (l *Loader) List(ctx context.Context) ([]File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("markdown loader list %s: %w", l.basePath, err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !l.matchesPattern(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("markdown loader stat %s: %w", entry.Name(), err)
		}
		files = append(files, File{
			Path:    filepath.Join(l.basePath, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

// LoadFile reads one listed file and splits its frontmatter from the body.
func (l *Loader) LoadFile(ctx context.Context, file File) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(l.fs, file.Name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", file.Name, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("markdown loader %s: %w", file.Name, ErrInvalidEncoding)
	}

	doc, err := BuildDocument(file.Path, file.Name, data, file.ModTime)
	if err != nil {
		return nil, fmt.Errorf("markdown loader %s: %w", file.Name, err)
	}
	return doc, nil
}

func (l *Loader) matchesPattern(name string) bool {
	match, err := filepath.Match(l.pattern, name)
	if err != nil {
		return false
	}
	return match
}
