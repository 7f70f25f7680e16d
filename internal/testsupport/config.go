package testsupport

import (
	"path/filepath"
	"testing"

	"organize/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.LockDir = filepath.Join(base, "locks")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithoutSubfolders disables category subfolder creation on the test config.
func WithoutSubfolders() ConfigOption {
	return func(c *config.Config) {
		c.Organizer.CreateSubfolders = false
	}
}

// WithHiddenIncluded disables hidden-file skipping on the test config.
func WithHiddenIncluded() ConfigOption {
	return func(c *config.Config) {
		c.Organizer.SkipHidden = false
	}
}
