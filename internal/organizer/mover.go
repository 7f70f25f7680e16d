package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"organize/internal/fileutil"
	"organize/internal/scan"
)

const maxProbeAttempts = 10000

// placeByCategory moves rec into <base>/<category>. It returns the resolved
// target and whether the file counts as organized; with subfolder creation
// disabled the operation is a skip, not an error.
func (o *Organizer) placeByCategory(rec scan.FileRecord, base string) (string, bool, error) {
	if !o.opts.CreateSubfolders {
		return "", false, nil
	}

	folder := filepath.Join(base, rec.Category)
	if !o.opts.DryRun {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return "", false, fmt.Errorf("create category folder: %w", err)
		}
	}

	target, err := resolveTarget(folder, rec.Name)
	if err != nil {
		return "", false, err
	}
	if o.opts.DryRun {
		return target, true, nil
	}
	if err := fileutil.MoveFile(rec.Path, target); err != nil {
		return "", false, fmt.Errorf("move to %s: %w", rec.Category, err)
	}
	return target, true, nil
}

// placeByDate moves rec into <base>/<YYYY>/<YYYY>-<MM> derived from its
// last-modified timestamp, returning the target path and the date bucket key.
// Subfolder gating does not apply in date mode.
func (o *Organizer) placeByDate(rec scan.FileRecord, base string) (string, string, error) {
	info, err := os.Stat(rec.Path)
	if err != nil {
		return "", "", fmt.Errorf("read modification time: %w", err)
	}
	mtime := info.ModTime()
	key := mtime.Format("2006-01")
	folder := filepath.Join(base, mtime.Format("2006"), key)

	if !o.opts.DryRun {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return "", "", fmt.Errorf("create date folder: %w", err)
		}
	}

	target, err := resolveTarget(folder, rec.Name)
	if err != nil {
		return "", "", err
	}
	if o.opts.DryRun {
		return target, key, nil
	}
	if err := fileutil.MoveFile(rec.Path, target); err != nil {
		return "", "", fmt.Errorf("move to %s: %w", key, err)
	}
	return target, key, nil
}

// resolveTarget picks a collision-free path for name inside folder by probing
// name, then stem_1.ext, stem_2.ext, ... against real filesystem state. An
// existing file is never overwritten.
func resolveTarget(folder, name string) (string, error) {
	candidate := filepath.Join(folder, name)
	free, err := pathFree(candidate)
	if err != nil {
		return "", err
	}
	if free {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; n <= maxProbeAttempts; n++ {
		candidate = filepath.Join(folder, fmt.Sprintf("%s_%d%s", stem, n, ext))
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted filename candidates for %s in %s", name, folder)
}

func pathFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, err
}
