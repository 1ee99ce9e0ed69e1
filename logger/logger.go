package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/PierreHermey/SW3DMap/config"
)

// Setup builds a slog logger from config and installs it as the default
// The viewer must not write to stdout (owned by the terminal UI), so an
// empty FilePath falls back to discarding instead of corrupting the screen
func Setup(cfg config.LoggingConfig, toStderr bool) (*slog.Logger, func()) {
	var w io.Writer
	closer := func() {}

	switch {
	case toStderr:
		w = os.Stderr
	case cfg.FilePath != "":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			w = io.Discard
		} else {
			w = f
			closer = func() { f.Close() }
		}
	default:
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, closer
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
