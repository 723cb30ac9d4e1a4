package logger

import (
	"log/slog"
	"os"
)

// NewHandler creates a JSON slog handler for the application default logger.
func NewHandler(opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	return slog.NewJSONHandler(os.Stdout, opts)
}
