// Package logging builds the CLI logger and carries it through command
// contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const timeFormat = "15:04:05.00"

// New returns a logger writing to w at the given level with short timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
}

// ParseLevel accepts debug, info, warn, error and fatal, case-insensitive.
func ParseLevel(raw string) (log.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return log.InfoLevel, nil
	}

	level, err := log.ParseLevel(trimmed)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level %q: %w", raw, err)
	}

	return level, nil
}

type ctxKey int

const loggerKey ctxKey = 0

func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext falls back to a discarding logger so callers never need a nil check.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}

	return log.New(io.Discard)
}
