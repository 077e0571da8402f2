package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a slog.Logger with a JSON handler writing to w.
// The level string is case-insensitive; an empty or unrecognized level
// defaults to INFO.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
