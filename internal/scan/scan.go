// Package scan lists the direct file children of a directory and derives the
// per-file metadata the organizer works from.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"organize/internal/classify"
)

// FileRecord describes one regular file found in the target directory.
// Records are built once at scan time and never mutated afterwards.
type FileRecord struct {
	Name      string
	Path      string
	Extension string // lowercase, includes the leading dot, "" when absent
	Size      int64
	Category  string
}

// ErrNotDirectory is returned when the scan target exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Directory validates that path exists and is a directory, returning its
// absolute form.
func Directory(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("directory does not exist: %s", abs)
		}
		return "", fmt.Errorf("inspect directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}
	return abs, nil
}

// Files returns the regular files that are direct children of dir. When
// skipHidden is set, dot-prefixed entries are excluded entirely. Order is
// whatever the filesystem returns; callers must not rely on it.
func Files(dir string, skipHidden bool) ([]FileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	records := make([]FileRecord, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if skipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between listing and stat; treat as absent.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		ext := strings.ToLower(filepath.Ext(name))
		records = append(records, FileRecord{
			Name:      name,
			Path:      filepath.Join(dir, name),
			Extension: ext,
			Size:      info.Size(),
			Category:  classify.Classify(ext),
		})
	}
	return records, nil
}
