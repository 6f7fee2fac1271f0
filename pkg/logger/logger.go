// Package logger builds slog.Loggers with a configurable level and
// output format. Every binary in this repo constructs its logger here
// so the flags and env knobs behave the same across the server and CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a *slog.Logger writing to stderr.
// Level accepts "debug", "info", "warn", "error" (default "info");
// format accepts "json" or "text" (default "text").
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit output writer, for tests and
// for commands that want log output on a specific stream.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// ParseLevel maps a level string to a slog.Level, case-insensitively.
// Unrecognized values fall back to LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
