package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TRASHMANAGER_PRESERVE_DAYS", "")
	t.Setenv("TRASHMANAGER_MAX_CONSOLE_LINES", "")
	t.Setenv("TRASHMANAGER_LANG", "")
	t.Setenv("TRASHMANAGER_LOG_LEVEL", "")
	t.Setenv("TRASHMANAGER_TRASH_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := FromEnv()
	assert.Equal(t, DefaultSettings(), cfg.Defaults)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/data", "Trash"), cfg.TrashDir)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TRASHMANAGER_PRESERVE_DAYS", "7")
	t.Setenv("TRASHMANAGER_MAX_CONSOLE_LINES", "50")
	t.Setenv("TRASHMANAGER_LANG", "FR")
	t.Setenv("TRASHMANAGER_LOG_LEVEL", "debug")
	t.Setenv("TRASHMANAGER_TRASH_DIR", "/tmp/trash")

	cfg := FromEnv()
	assert.Equal(t, Settings{PreserveDays: 7, MaxConsoleLines: 50}, cfg.Defaults)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/trash", cfg.TrashDir)
}

func TestFromEnvRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		days, lines string
	}{
		{"0", "0"},
		{"256", "70000"},
		{"-4", "-1"},
		{"many", "lots"},
	}

	for _, tt := range tests {
		t.Setenv("TRASHMANAGER_PRESERVE_DAYS", tt.days)
		t.Setenv("TRASHMANAGER_MAX_CONSOLE_LINES", tt.lines)

		cfg := FromEnv()
		assert.Equal(t, DefaultSettings(), cfg.Defaults, "days=%s lines=%s", tt.days, tt.lines)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRASHMANAGER_TEST_MARKER=12\n"), 0644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("TRASHMANAGER_TEST_MARKER") })

	Load()
	assert.Equal(t, "12", os.Getenv("TRASHMANAGER_TEST_MARKER"))
}

func TestSettingsValidate(t *testing.T) {
	s := Settings{}
	s.Validate()
	assert.Equal(t, uint8(MinPreserveDays), s.PreserveDays)
	assert.Equal(t, uint16(DefaultMaxConsoleLines), s.MaxConsoleLines)

	s = Settings{PreserveDays: 200, MaxConsoleLines: 12}
	s.Validate()
	assert.Equal(t, Settings{PreserveDays: 200, MaxConsoleLines: 12}, s)
}

func TestSetPreserveDays(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 1},
		{-10, 1},
		{1, 1},
		{30, 30},
		{255, 255},
		{256, 255},
		{10000, 255},
	}

	for _, tt := range tests {
		var s Settings
		s.SetPreserveDays(tt.in)
		assert.Equal(t, tt.want, s.PreserveDays, "SetPreserveDays(%d)", tt.in)
	}
}
