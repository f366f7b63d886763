package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"chatbot/internal/config"
)

// newLogger builds the slog text logger for cfg. Logs go to general.logFile
// when set, otherwise to stderr. The returned func closes the log file.
func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	out, closeFn := stderr, func() {}
	if cfg.General.LogFile != "" {
		f, err := os.OpenFile(config.ExpandPath(cfg.General.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.General.LogLevel)})
	return slog.New(handler), closeFn, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
