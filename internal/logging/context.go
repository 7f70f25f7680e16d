package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for organize run identifiers.
	FieldRunID = "run_id"
	// FieldDirectory is the standardized structured logging key for the target directory.
	FieldDirectory = "directory"
	// FieldMode is the standardized structured logging key for the organization mode.
	FieldMode = "mode"
	// FieldFile is the standardized structured logging key for per-file operations.
	FieldFile = "file"
)

type runIDKey struct{}

// WithRunID stores the run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext extracts the run identifier, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if id, ok := RunIDFromContext(ctx); ok {
		return []slog.Attr{slog.String(FieldRunID, id)}
	}
	return nil
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
