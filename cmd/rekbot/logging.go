package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sangpham2710/rekbot/internal/config"
)

// setupLogger configures slog from config and makes it the default logger.
// Logs go to out, and also to log_file when set. The returned func closes
// the log file, if any.
func setupLogger(cfg *config.Config, out io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	w := out
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(out, f)
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(newHandler(w, cfg.LogFormat, level))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
