package app

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/belfry-dev/belfry/internal/config"
)

// initLogging routes diagnostics to a rotating log file so the
// fullscreen clock display is never disturbed by log output.
func initLogging() {
	writer := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	level := slog.LevelInfo
	if os.Getenv("BELFRY_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
