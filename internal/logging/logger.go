// Package logging builds the benchkit diagnostic logger. Filter results own
// Stdout, so everything here goes to Stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger. Debug mode lowers the level so
// watch-mode file events and other chatter become visible.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(handler(os.Stderr, level))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// handler standardizes attribute keys, shortening "error" to "err".
func handler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
}
