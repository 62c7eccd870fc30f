package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MikeSquared-Agency/wqi/internal/config"
)

// New builds the service logger from the logging config.
func New(cfg config.LoggingConfig) *slog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", "wqi")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
