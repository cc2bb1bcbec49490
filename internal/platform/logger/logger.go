// Package logger provides structured logging setup for the application.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the application's structured logger and installs it as
// the slog default. Level is parsed case-insensitively; format selects
// between a human-readable text handler and JSON. Both values are validated
// by the config layer, so an unknown one here is a programming error.
func Setup(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, nil
}
