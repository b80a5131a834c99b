// Package logging sets up the application's structured logger.
//
// RecipeBliss draws the whole terminal, so log output must never reach
// stdout or stderr while the UI is running. Open writes JSON records to
// a file instead, and falls back to a discard logger when the file
// cannot be opened so callers never need a nil check.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Open returns a JSON slog.Logger appending to path, plus a close func.
// Failure to open the file degrades to a no-op logger rather than an
// error; losing logs should never stop the app from starting.
func Open(path string) (*slog.Logger, func() error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() error { return nil }
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() error { return nil }
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler), file.Close
}
