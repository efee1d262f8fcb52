package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"diarykeeper/internal/app/diary/config"
)

// New создаёт логгер для окружения env с уровнем по умолчанию.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel создаёт логгер; непустой level (debug, info, warn, error)
// переопределяет уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	lvl, ok := parseLevel(level)

	switch env {
	case config.EnvLocal:
		if !ok {
			lvl = slog.LevelDebug
		}
		log = slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	case config.EnvDev:
		if !ok {
			lvl = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	default:
		if !ok {
			lvl = slog.LevelInfo
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	return slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func parseLevel(level string) (slog.Level, bool) {
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
