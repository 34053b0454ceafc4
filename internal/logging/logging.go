package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger writing human-readable text to stderr.
func New(level string) *logrus.Logger {
	return NewWithOutput(os.Stderr, level)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel converts "debug", "info", "warn" or "error" to a logrus level.
// Unknown strings default to InfoLevel.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
