package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"organize/internal/organizer"
	"organize/internal/testsupport"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\nlog_dir = %q\nlock_dir = %q\n",
		filepath.Join(base, "logs"), filepath.Join(base, "locks"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootWithoutArgumentsPrintsUsage(t *testing.T) {
	out, err := execute(t)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(out, "organize <directory>") {
		t.Fatalf("usage missing: %q", out)
	}
}

func TestRootOrganizesByCategory(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "photo.jpg"), "img")
	testsupport.WriteFile(t, filepath.Join(dir, "report.pdf"), "pdf")

	out, err := execute(t, "--config", cfg, dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Organized 2 of 2 files (0 skipped)") {
		t.Fatalf("summary missing: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "photo.jpg")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "documents", "report.pdf")); err != nil {
		t.Fatal(err)
	}
}

func TestRootDryRunEmitsJSONWithoutMoving(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "photo.jpg"), "img")

	out, err := execute(t, "--config", cfg, "--dry-run", "--json", dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	var report organizer.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse JSON: %v\n%s", err, out)
	}
	if !report.DryRun || report.OrganizedFiles != 1 {
		t.Fatalf("report: %+v", report)
	}
	if _, err := os.Stat(filepath.Join(dir, "photo.jpg")); err != nil {
		t.Fatalf("dry run moved the file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images")); !os.IsNotExist(err) {
		t.Fatalf("dry run created a folder, err=%v", err)
	}
}

func TestRootByDate(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := t.TempDir()
	mtime := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
	testsupport.WriteFileModified(t, filepath.Join(dir, "scan.pdf"), "pdf", mtime)

	out, err := execute(t, "--config", cfg, "--by-date", dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024", "2024-03", "scan.pdf")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2024-03") {
		t.Fatalf("bucket key missing from output: %q", out)
	}
}

func TestRootNoSubfoldersSkips(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.jpg"), "x")

	out, err := execute(t, "--config", cfg, "--no-subfolders", dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Organized 0 of 1 files (1 skipped)") {
		t.Fatalf("summary: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Fatal("file should not move")
	}
}

func TestRootMissingDirectoryFails(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := execute(t, "--config", cfg, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error")
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "conf", "config.toml")
	out, err := execute(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatal(err)
	}
	if out, err = execute(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("expected refusal without --overwrite, got: %s", out)
	}
}
