// internal/logging/logger.go
package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New creates the diagnostic logger. Output goes to stderr so the
// wire protocols keep stdout-free descriptors; when diagPath is set the
// same records are fanned out into an append-only diagnostics file.
func New(level slog.Level, diagPath string) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, opts)}
	closeFn := func() error { return nil }

	if diagPath != "" {
		f, err := os.OpenFile(diagPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			// Console sink still works; report and degrade.
			slog.New(handlers[0]).Warn("diagnostics file unavailable", "path", diagPath, "err", err)
		} else {
			handlers = append(handlers, slog.NewTextHandler(f, opts))
			closeFn = f.Close
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closeFn
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
