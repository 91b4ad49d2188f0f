package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init builds the global JSON logger. The level string comes from LOG_LEVEL;
// anything unrecognized falls back to info.
func Init(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	Log = slog.New(handler).With(slog.String("service", "workerconnect-api"))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
