package markdown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoaderListFiltersAndSorts(t *testing.T) {
	now := time.Now()
	fsys := fstest.MapFS{
		"b.md":         {Data: []byte("b"), ModTime: now},
		"a.md":         {Data: []byte("a"), ModTime: now},
		"notes.txt":    {Data: []byte("skip")},
		".hidden.md":   {Data: []byte("skip")},
		"drafts/c.md":  {Data: []byte("nested")},
		"readme.MD.md": {Data: []byte("c"), ModTime: now},
	}
	loader := NewLoader(fsys, LoaderConfig{BasePath: "articles"})

	files, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var names []string
	for _, file := range files {
		names = append(names, file.Name)
	}
	want := []string{"a.md", "b.md", "readme.MD.md"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if files[0].Path != filepath.Join("articles", "a.md") {
		t.Fatalf("expected base path prefix, got %s", files[0].Path)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	modified := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"post.md": {Data: []byte("---\ntitle: Post\n---\nHello\n"), ModTime: modified},
	}
	loader := NewLoader(fsys, LoaderConfig{BasePath: "articles"})

	files, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	doc, err := loader.LoadFile(context.Background(), files[0])
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.FrontMatter.Title != "Post" || doc.Body != "Hello" {
		t.Fatalf("unexpected document %#v", doc)
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("expected mod time %v, got %v", modified, doc.LastModified)
	}
}

func TestLoaderLoadFileHonoursCancellation(t *testing.T) {
	loader := NewLoader(fstest.MapFS{"a.md": {Data: []byte("a")}}, LoaderConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, File{Name: "a.md"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpenDirMissingDirectory(t *testing.T) {
	_, err := OpenDir(filepath.Join(t.TempDir(), "missing"), "")
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestOpenDirRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.md")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := OpenDir(path, ""); !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound for file path, got %v", err)
	}
}

func TestLoaderLoadFileRejectsInvalidUTF8(t *testing.T) {
	loader := NewLoader(fstest.MapFS{"bad.md": {Data: []byte{0xff, 0xfe, 'x'}}}, LoaderConfig{})

	_, err := loader.LoadFile(context.Background(), File{Name: "bad.md"})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}
