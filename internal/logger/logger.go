package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds the process logger and installs it as the slog default.
// Development: text format with Debug level.
// Production: JSON format with Info level.
func New(isDev bool) *slog.Logger {
	l := slog.New(newHandler(os.Stdout, isDev))
	slog.SetDefault(l)
	return l
}

func newHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

// Discard returns a logger that drops everything, for tests and tools.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
