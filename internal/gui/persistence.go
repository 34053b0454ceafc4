package gui

import (
	"trash-manager/internal/state"
)

// saveState writes the settings and console to the application preferences.
func (s *AppState) saveState() {
	if err := state.Save(s.app.Preferences(), s.state); err != nil {
		s.logger.WithError(err).Error("Failed to save application state")
		return
	}
	s.logger.WithField("console_lines", s.state.Console.Queue.Len()).Debug("Application state saved")
}
