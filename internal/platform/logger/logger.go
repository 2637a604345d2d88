package logger

import (
	"context"
)

// Logger is the logging port used across the application.
// Args are alternating key/value pairs, as in log/slog.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
