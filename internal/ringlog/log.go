package ringlog

import (
	"encoding/json"
	"iter"
	"strings"
)

// Log is a ring of text lines backing the console panel.
type Log struct {
	ring *Ring[string]
}

// NewLog creates a log that keeps the last maxLines lines.
// It panics if maxLines is not positive.
func NewLog(maxLines int) *Log {
	return &Log{ring: New[string](maxLines)}
}

// Push appends a single line as is.
func (l *Log) Push(line string) { l.ring.Push(line) }

// AddText splits text into lines and pushes each of them in order.
// Empty text leaves the log untouched.
func (l *Log) AddText(text string) {
	for _, line := range splitLines(text) {
		l.ring.Push(line)
	}
}

// Lines yields the stored lines, oldest first.
func (l *Log) Lines() iter.Seq[string] { return l.ring.All() }

// GetLastN returns up to n lines from the front of the log (the oldest ones).
func (l *Log) GetLastN(n int) []string { return l.ring.GetLastN(n) }

// Clear drops every stored line.
func (l *Log) Clear() { l.ring.Clear() }

// IsEmpty reports whether the log holds no lines.
func (l *Log) IsEmpty() bool { return l.ring.IsEmpty() }

// Len returns the number of stored lines.
func (l *Log) Len() int { return l.ring.Len() }

// Cap returns the maximum number of lines kept.
func (l *Log) Cap() int { return l.ring.Cap() }

// String joins the stored lines with newlines.
func (l *Log) String() string {
	return strings.Join(l.ring.Items(), "\n")
}

func (l *Log) MarshalJSON() ([]byte, error) {
	return l.ring.MarshalJSON()
}

func (l *Log) UnmarshalJSON(data []byte) error {
	var r Ring[string]
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	l.ring = &r
	return nil
}

// splitLines breaks text on "\n", trimming one trailing "\r" per line.
// A final newline terminates the last line instead of starting an empty one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		line, rest, found := strings.Cut(text, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		if !found || rest == "" {
			return lines
		}
		text = rest
	}
}
