package config

const (
	DefaultPreserveDays    = 30
	DefaultMaxConsoleLines = 1000

	MinPreserveDays = 1
	MaxPreserveDays = 255
)

// Settings stores the user-facing settings persisted with the application state.
type Settings struct {
	PreserveDays    uint8  `json:"time_threshold"`    // Entries older than this many days are eligible for purge
	MaxConsoleLines uint16 `json:"max_console_lines"` // Console capacity and number of lines displayed
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		PreserveDays:    DefaultPreserveDays,
		MaxConsoleLines: DefaultMaxConsoleLines,
	}
}

// Validate clamps the settings into their valid ranges.
func (s *Settings) Validate() {
	if s.PreserveDays < MinPreserveDays {
		s.PreserveDays = MinPreserveDays
	}
	if s.MaxConsoleLines < 1 {
		s.MaxConsoleLines = DefaultMaxConsoleLines
	}
}

// SetPreserveDays stores days clamped to [MinPreserveDays, MaxPreserveDays].
func (s *Settings) SetPreserveDays(days int) {
	switch {
	case days < MinPreserveDays:
		days = MinPreserveDays
	case days > MaxPreserveDays:
		days = MaxPreserveDays
	}
	s.PreserveDays = uint8(days)
}
