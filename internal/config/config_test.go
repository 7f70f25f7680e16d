package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"organize/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if !cfg.Organizer.CreateSubfolders {
		t.Fatal("expected create_subfolders default true")
	}
	if !cfg.Organizer.SkipHidden {
		t.Fatal("expected skip_hidden default true")
	}
	if cfg.Organizer.PreserveStructure {
		t.Fatal("expected preserve_structure default false")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("log dir not expanded: %q", cfg.Paths.LogDir)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[organizer]
create_subfolders = false
skip_hidden = false

[logging]
format = "JSON"
level = "Debug"

[paths]
log_dir = "` + filepath.Join(dir, "logs") + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Organizer.CreateSubfolders || cfg.Organizer.SkipHidden {
		t.Fatalf("overrides not applied: %+v", cfg.Organizer)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample not detected")
	}
	if !cfg.Organizer.CreateSubfolders {
		t.Fatal("sample should keep default create_subfolders")
	}
}
