package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"organize/internal/logging"
	"organize/internal/organizer"
	"organize/internal/testsupport"
)

func sampleReport(t *testing.T) *organizer.Report {
	t.Helper()
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.jpg"), "1234")
	testsupport.WriteFile(t, filepath.Join(dir, "b.pdf"), "12")

	rep, err := organizer.New(organizer.DefaultOptions(), logging.NewNop()).ByCategory(context.Background(), dir)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	return rep
}

func TestRenderReportPlain(t *testing.T) {
	out := renderReport(sampleReport(t), false)
	if !strings.Contains(out, "Organized 2 of 2 files (0 skipped)") {
		t.Fatalf("summary missing: %q", out)
	}
	for _, want := range []string{"images", "documents", "1 files"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderReportTable(t *testing.T) {
	out := renderReport(sampleReport(t), true)
	// go-pretty's default header format is uppercase.
	for _, want := range []string{"FOLDER", "FILES", "SIZE", "images", "documents"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in table output:\n%s", want, out)
		}
	}
}

func TestRenderReportDryRunMarker(t *testing.T) {
	rep := sampleReport(t)
	rep.DryRun = true
	out := renderReport(rep, false)
	if !strings.Contains(out, "dry run") {
		t.Fatalf("dry-run marker missing: %q", out)
	}
}

func TestRenderReportErrors(t *testing.T) {
	rep := sampleReport(t)
	rep.Errors = append(rep.Errors, "Failed to organize x.pdf: permission denied")
	out := renderReport(rep, false)
	if !strings.Contains(out, "Errors (1):") || !strings.Contains(out, "Failed to organize x.pdf") {
		t.Fatalf("errors missing: %q", out)
	}
}
