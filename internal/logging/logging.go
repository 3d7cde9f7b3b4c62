// Package logging configures slog output for the bot and admin API.
package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Log manages the shared log file and the dynamic level.
type Log struct {
	file  *os.File
	path  string
	level *slog.LevelVar
}

// Setup creates a slog.Logger writing to stdout and logPath, installs it as
// the default logger, and redirects the standard log package output there too
// (telegram-bot-api logs through the standard logger).
func Setup(logPath string) (*Log, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	out := io.MultiWriter(os.Stdout, file)
	log.SetOutput(out)
	log.SetFlags(log.Ldate | log.Ltime)

	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})))

	return &Log{file: file, path: logPath, level: level}, nil
}

// SetLevel changes the log level dynamically.
// Valid levels: debug, info, warn, error (case-insensitive).
// Unknown values fall back to info with a warning.
func (l *Log) SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		l.level.Set(slog.LevelDebug)
	case "info", "":
		l.level.Set(slog.LevelInfo)
	case "warn":
		l.level.Set(slog.LevelWarn)
	case "error":
		l.level.Set(slog.LevelError)
	default:
		slog.Warn("Unknown log_level, using info", "value", level)
		l.level.Set(slog.LevelInfo)
	}
}

// StartRotation periodically truncates the log file when it grows past maxSize.
// The bot may run for months on small hosts, so the file is capped rather than
// archived.
func (l *Log) StartRotation(ctx context.Context, maxSize int64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				truncateIfNeeded(l.path, maxSize)
			}
		}
	}()
}

func truncateIfNeeded(path string, maxSize int64) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() > maxSize {
		if err := os.Truncate(path, 0); err != nil {
			slog.Warn("Failed to truncate log file", "path", path, "error", err)
		} else {
			slog.Info("Truncated log file", "path", path, "prev_size", info.Size())
		}
	}
}

// Close closes the log file
func (l *Log) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
