// Package config loads and validates the organize configuration file.
//
// Configuration lives in a TOML file (~/.config/organize/config.toml, with a
// project-local organize.toml fallback). Missing files are not an error; the
// repository defaults apply. Command-line flags override the file.
package config
