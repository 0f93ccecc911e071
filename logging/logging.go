// Package logging configures the debug logger. The terminal owns
// stdout, so structured logs go to a file, or nowhere when disabled.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a slog.Logger writing JSON to the given file, and a
// closer for it. An empty path yields a logger that discards
// everything.
func New(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f.Close, nil
}
