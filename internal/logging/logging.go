// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel converts debug|info|warn|error into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// New создает логгер: текст в console, плюс JSON в logFile, если путь задан.
// Возвращаемая функция закрывает файл журнала.
func New(console io.Writer, level, logFile string) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	consoleHandler := slog.NewTextHandler(console, opts)

	if logFile == "" {
		return slog.New(consoleHandler), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slogmulti.Fanout(
		consoleHandler,
		slog.NewJSONHandler(f, opts),
	))

	return logger, f.Close, nil
}
