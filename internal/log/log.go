// Package log sets up slog with two extra levels: trace for very chatty
// engine output and fatal for errors that should exit the process.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	// LevelTrace for per-draw logging from the random primitives.
	LevelTrace = slog.Level(-8)

	// LevelFatal for errors that should print and exit with a non-zero code.
	LevelFatal = slog.Level(16)
)

// ParseLevel reads a level name, including the custom trace and fatal ones.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "fatal":
		return LevelFatal, nil
	}

	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// New creates a logger writing to stderr in the given format ("text" or
// "json") that knows how to name the custom levels.
func New(minLevel slog.Level, addSource bool, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		Level:     minLevel,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				switch a.Value.Any().(slog.Level) {
				case LevelTrace:
					a.Value = slog.StringValue("TRACE")
				case LevelFatal:
					a.Value = slog.StringValue("FATAL")
				}
			}
			return a
		},
	}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// Trace logs a message at trace level using the provided logger.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1)
}
