// Package testsupport loads fixture files and golden documents for tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// LoadFixture returns the raw bytes of a fixture file.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden decodes a JSON golden file into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// CopyFixtures copies the regular files of src into dst, stamping each copy
// with the modification time returned by modTime for its name. A nil modTime
// leaves the copy time untouched.
func CopyFixtures(src, dst string, modTime func(name string) time.Time) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return err
		}
		target := filepath.Join(dst, entry.Name())
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		if modTime != nil {
			stamp := modTime(entry.Name())
			if err := os.Chtimes(target, stamp, stamp); err != nil {
				return err
			}
		}
	}
	return nil
}
