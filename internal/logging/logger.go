// Package logging defines the structured logger passed to every server
// component, plus its slog-backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// args are key/value pairs:
//
//	log.Warn(ctx, "login gate unavailable", "member_id", id, "error", err)
type Logger interface {
	// Debug logs diagnostic detail, normally disabled in production.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
