package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Options
	}{
		{
			name: "unset",
			env:  nil,
			want: Options{Level: slog.LevelInfo},
		},
		{
			name: "enabled with dir and level",
			env:  map[string]string{envEnabled: "true", envDir: "/tmp/x", envLevel: "debug"},
			want: Options{Enabled: true, LogDir: "/tmp/x", Level: slog.LevelDebug},
		},
		{
			name: "numeric switch and upper-case level",
			env:  map[string]string{envEnabled: "1", envLevel: "WARN"},
			want: Options{Enabled: true, Level: slog.LevelWarn},
		},
		{
			name: "bad level falls back",
			env:  map[string]string{envEnabled: "yes", envLevel: "chatty"},
			want: Options{Enabled: true, Level: slog.LevelInfo},
		},
		{
			name: "disabled value",
			env:  map[string]string{envEnabled: "0", envLevel: "error"},
			want: Options{Level: slog.LevelError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptionsFromEnv(envMap(tt.env)))
		})
	}
}

func TestInitWritesToDatedFile(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })
	dir := t.TempDir()

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	Debug("decoded record", "path", "$IABC.txt")
	Info("run complete", "files", 3)
	Error("write failed", "error", "closed pipe")

	data, err := os.ReadFile(filepath.Join(dir, logFileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"decoded record"`)
	assert.Contains(t, string(data), `"path":"$IABC.txt"`)
	assert.Contains(t, string(data), `"msg":"run complete"`)
	assert.Contains(t, string(data), `"level":"ERROR"`)
}

func TestInitDisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{}))

	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(t.Context(), lvl), "level %s", lvl)
	}
}

func TestInitEnabledThenDisabled(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir(), Level: slog.LevelWarn}))
	assert.True(t, L.Enabled(t.Context(), slog.LevelError))
	assert.False(t, L.Enabled(t.Context(), slog.LevelInfo))

	require.NoError(t, Init(Options{}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	old := logFileName(now.AddDate(0, 0, -retentionDays-1))
	recent := logFileName(now.AddDate(0, 0, -1))
	other := "notes.txt"
	for _, name := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, recent))
	assert.FileExists(t, filepath.Join(dir, other))
}
