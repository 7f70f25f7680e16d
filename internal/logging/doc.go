// Package logging wraps log/slog with the handlers and attribute helpers used
// across organize. The console handler renders compact single-line records
// with a leading component prefix; the json handler emits machine-readable
// records for log files.
package logging
