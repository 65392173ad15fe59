package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger

func init() {
	Setup()
}

// Setup (re)builds the process logger from the environment. LOG_LEVEL selects
// the minimum level (debug, info, warn, error); NO_COLOR disables ANSI
// colors.
func Setup() {
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      ParseLevel(os.Getenv("LOG_LEVEL")),
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}

// ParseLevel maps a level name to its slog level, defaulting to info.
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

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// The *WithComponent variants tag the record with a component attribute
// instead of the old hardcoded bracketed prefixes.

func DebugWithComponent(component, msg string, args ...any) {
	logger.Debug(msg, append([]any{"component", component}, args...)...)
}

func InfoWithComponent(component, msg string, args ...any) {
	logger.Info(msg, append([]any{"component", component}, args...)...)
}

func WarnWithComponent(component, msg string, args ...any) {
	logger.Warn(msg, append([]any{"component", component}, args...)...)
}

func ErrorWithComponent(component, msg string, args ...any) {
	logger.Error(msg, append([]any{"component", component}, args...)...)
}
