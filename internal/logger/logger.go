// Package logger holds the process-wide slog logger. Records are dropped
// until Init turns logging on, and nothing is ever written to stdout: stdout
// belongs to the per-file summary lines.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the process logger. Until Init enables it, every level is disabled.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "infotrash-"
	logSuffix     = ".log"
	retentionDays = 30

	envEnabled = "INFOTRASH_LOG"
	envDir     = "INFOTRASH_LOG_DIR"
	envLevel   = "INFOTRASH_LOG_LEVEL"
)

// Options controls where, and whether, records are written.
type Options struct {
	Enabled bool       // off: L drops everything
	LogDir  string     // empty: ~/.infotrash/logs
	Level   slog.Level // lowest level kept
}

// OptionsFromEnv builds Options from INFOTRASH_LOG, INFOTRASH_LOG_DIR and
// INFOTRASH_LOG_LEVEL. Unknown level names mean info.
func OptionsFromEnv(getenv func(string) string) Options {
	opts := Options{Level: slog.LevelInfo}

	switch strings.ToLower(strings.TrimSpace(getenv(envEnabled))) {
	case "1", "true", "yes", "on":
		opts.Enabled = true
	}
	opts.LogDir = getenv(envDir)

	if lvl := strings.TrimSpace(getenv(envLevel)); lvl != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(lvl)); err == nil {
			opts.Level = l
		}
	}
	return opts
}

// Init replaces L. With logging enabled, records go as JSON to one file per
// day under the log directory, and files past the retention window are pruned.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".infotrash", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	cleanOldLogs(logDir, now)

	f, err := os.OpenFile(filepath.Join(logDir, logFileName(now)),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// logFileName is infotrash-YYYY-MM-DD.log for day.
func logFileName(day time.Time) string {
	return logPrefix + day.Format(time.DateOnly) + logSuffix
}

// cleanOldLogs deletes our dated files older than retentionDays relative to
// now. Anything else in the directory is left alone; failures are ignored.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		stamp, ok := strings.CutPrefix(name, logPrefix)
		if !ok {
			continue
		}
		stamp, ok = strings.CutSuffix(stamp, logSuffix)
		if !ok {
			continue
		}
		day, err := time.Parse(time.DateOnly, stamp)
		if err != nil || !day.Before(cutoff) {
			continue
		}
		os.Remove(filepath.Join(logDir, name))
	}
}

// Shorthands for logging through L.

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
