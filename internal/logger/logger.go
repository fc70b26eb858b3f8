package logger

import (
	"log/slog"
	"os"

	"github.com/shopcore/adminapi/internal/config"
)

// New creates the process logger. Production emits info-level JSON for log
// shipping; every other environment gets debug-level JSON with source
// locations for local work.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if !cfg.Production() {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler).With(
		slog.String("service", "adminapi"),
		slog.String("env", cfg.Environment),
	)
}
