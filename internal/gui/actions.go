package gui

import (
	"strings"

	"trash-manager/internal/cleaner"
	"trash-manager/internal/locale"
)

func (s *AppState) analyze() {
	s.appendReport(s.cleaner.Analyze(int(s.state.Settings.PreserveDays)))
}

func (s *AppState) deletePermanently() {
	s.appendReport(s.cleaner.DeletePermanently(int(s.state.Settings.PreserveDays)))
	s.refreshStatus()
}

func (s *AppState) clearConsole() {
	s.state.Console.Queue.Clear()
	s.refreshConsole()
}

func (s *AppState) appendReport(r cleaner.Report) {
	s.state.Console.Queue.AddText(r.Text())
	s.refreshConsole()
}

// visibleLines returns the newest MaxConsoleLines lines of the console.
func (s *AppState) visibleLines() []string {
	queue := s.state.Console.Queue
	lines := queue.GetLastN(queue.Len())
	if limit := int(s.state.Settings.MaxConsoleLines); len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines
}

func (s *AppState) refreshConsole() {
	s.logView.SetText(strings.Join(s.visibleLines(), "\n"))
	s.logScroll.ScrollToBottom()
}

// refreshStatus shows how many entries the trash currently holds.
func (s *AppState) refreshStatus() {
	entries, err := s.bin.List()
	if err != nil {
		s.logger.WithError(err).Debug("Trash status unavailable")
		s.statusLabel.SetText(s.p.Sprintf(locale.StatusTrashError))
		return
	}
	s.statusLabel.SetText(s.p.Sprintf(locale.StatusTrashCount, len(entries)))
}
