// SPDX-License-Identifier: MIT
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
}

// New creates a structured logger. Unknown levels fall back to warn and
// output defaults to stderr so it never mixes with swatch output on stdout.
func New(opts Options) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(opts.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(opts.Format) == "json" {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	return slog.New(handler)
}
