// Package testsupport provides shared fixtures for organize tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates path (and any parent directories) with the given content.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileModified creates path with the given content and sets its
// modification time.
func WriteFileModified(t testing.TB, path, content string, mtime time.Time) {
	t.Helper()

	WriteFile(t, path, content)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// TreeSnapshot walks root and returns every path (relative to root) with its
// size, for byte-for-byte "nothing changed" assertions.
func TreeSnapshot(t testing.TB, root string) map[string]int64 {
	t.Helper()

	snapshot := map[string]int64{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			snapshot[rel] = -1
			return nil
		}
		snapshot[rel] = info.Size()
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return snapshot
}
