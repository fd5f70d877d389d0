package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"planet-builder/internal/shared/config"

	slogmulti "github.com/samber/slog-multi"
)

// Init installs the default logger. The returned function closes the log file, if any.
func Init() (func() error, error) {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}

	logConfig := config.GlobalConfig.Logging
	logger, cleanup, err := New(logConfig, os.Stdout)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	logger.With("component", "logger").Debug("Logger initialized",
		"level", logConfig.Level,
		"json_format", logConfig.JSONFormat,
		"file", logConfig.File,
		"environment", config.GlobalConfig.Server.Environment,
	)
	return cleanup, nil
}

// New builds a logger writing to out. When cfg.File is set, records are also written as
// JSON to that file.
func New(cfg config.LoggingConfig, out io.Writer) (*slog.Logger, func() error, error) {
	level := parseLogLevel(cfg.Level)
	handler := consoleHandler(cfg, out, level)

	if cfg.File == "" {
		return slog.New(handler), func() error { return nil }, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(handler, fileHandler)), file.Close, nil
}

func consoleHandler(cfg config.LoggingConfig, out io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSONFormat {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
