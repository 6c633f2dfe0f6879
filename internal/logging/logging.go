// Package logging configures the process-wide slog logger. The TUI owns
// stdout and stderr, so log output goes to a file (or nowhere).
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Setup returns a logger writing to the file at path, plus a close func.
// An empty path yields a logger that discards everything.
func Setup(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(discardHandler{}), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}

// discardHandler drops all records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
