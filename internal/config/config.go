package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// AppID identifies the application to Fyne; it scopes the preferences store.
const AppID = "io.github.trashmanager"

// ==========================
// Environment & Config Setup
// ==========================

// Config holds process-level configuration read from the environment.
// Values here seed a fresh Settings; persisted Settings win once they exist.
type Config struct {
	Defaults Settings
	Language string // "en" or "fr"
	TrashDir string
	LogLevel string
}

// Load reads an optional .env file and then the TRASHMANAGER_* variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment and defaults")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	days := getEnvInt("TRASHMANAGER_PRESERVE_DAYS", DefaultPreserveDays)
	if days < MinPreserveDays || days > MaxPreserveDays {
		days = DefaultPreserveDays
	}
	lines := getEnvInt("TRASHMANAGER_MAX_CONSOLE_LINES", DefaultMaxConsoleLines)
	if lines < 1 || lines > math.MaxUint16 {
		lines = DefaultMaxConsoleLines
	}

	return Config{
		Defaults: Settings{PreserveDays: uint8(days), MaxConsoleLines: uint16(lines)},
		Language: strings.ToLower(getEnv("TRASHMANAGER_LANG", "en")),
		TrashDir: getEnv("TRASHMANAGER_TRASH_DIR", defaultTrashDir()),
		LogLevel: getEnv("TRASHMANAGER_LOG_LEVEL", "info"),
	}
}

// defaultTrashDir follows the XDG layout: $XDG_DATA_HOME/Trash,
// falling back to ~/.local/share/Trash.
func defaultTrashDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "Trash")
	}
	return filepath.Join(home, ".local", "share", "Trash")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
