package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
