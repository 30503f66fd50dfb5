package glsteps

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// defaultLogger is used by every component that was not given a logger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// DefaultLogger returns the package logger writing to stderr.
func DefaultLogger() *slog.Logger {
	return defaultLogger
}
