package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"trash-manager/internal/cleaner"
	"trash-manager/internal/config"
	"trash-manager/internal/locale"
	"trash-manager/internal/state"
	"trash-manager/internal/trash"
)

type AppState struct {
	app     fyne.App
	window  fyne.Window
	state   *state.AppState
	bin     trash.Bin
	cleaner *cleaner.Cleaner
	p       *message.Printer
	logger  *logrus.Entry

	fileMenu    *fyne.Menu
	darkMode    *fyne.MenuItem
	stepper     *Stepper
	analyzeBtn  *widget.Button
	deleteBtn   *widget.Button
	clearBtn    *widget.Button
	statusLabel *widget.Label
	logView     *widget.Label
	logScroll   *container.Scroll
}

// Run opens the main window and blocks until the application quits.
func Run(cfg config.Config, logger *logrus.Logger) {
	log := logger.WithField("component", "gui")

	log.Info("Initializing Fyne application...")
	myApp := app.NewWithID(config.AppID)

	bin := trash.NewFreedesktop(cfg.TrashDir, logger)
	s := newAppState(myApp, cfg, bin, logger)

	if err := bin.EnsureLayout(); err != nil {
		log.WithError(err).Warn("Could not create trash directories")
	}
	watcher, err := trash.NewWatcher(bin.InfoDir(), trash.DefaultDebounce, logger)
	if err != nil {
		log.WithError(err).Warn("Trash watcher disabled")
	} else {
		defer watcher.Close()
		go watcher.Run(func() { fyne.Do(s.refreshStatus) })
	}

	myApp.Lifecycle().SetOnStopped(s.saveState)

	log.Info("Starting GUI event loop...")
	s.window.ShowAndRun()
	log.Info("GUI closed.")
}

// newAppState restores the saved state from a's preferences and builds the window.
func newAppState(a fyne.App, cfg config.Config, bin trash.Bin, logger *logrus.Logger, opts ...cleaner.Option) *AppState {
	p := locale.Printer(cfg.Language)
	s := &AppState{
		app:     a,
		bin:     bin,
		cleaner: cleaner.New(bin, p, logger, opts...),
		p:       p,
		logger:  logger.WithField("component", "gui"),
	}

	st, err := state.Load(a.Preferences(), cfg.Defaults)
	switch {
	case errors.Is(err, state.ErrNoState):
		s.logger.Info("No saved state, starting with defaults")
	case err != nil:
		s.logger.WithError(err).Warn("Could not load previous state (starting fresh)")
	}
	s.state = st
	s.state.Console.Queue.AddText(p.Sprintf(locale.NoticeKey))

	s.window = a.NewWindow(p.Sprintf(locale.WindowTitle))
	s.window.Resize(fyne.NewSize(800, 360))
	s.window.SetMainMenu(s.mainMenu())
	s.window.SetCloseIntercept(func() {
		s.saveState()
		s.window.Close()
	})
	s.window.SetContent(s.buildContent())

	s.refreshConsole()
	s.refreshStatus()
	return s
}

func (s *AppState) mainMenu() *fyne.MainMenu {
	quit := fyne.NewMenuItem(s.p.Sprintf(locale.MenuQuit), s.quit)
	quit.IsQuit = true
	s.darkMode = s.darkModeItem()
	s.fileMenu = fyne.NewMenu(s.p.Sprintf(locale.MenuFile), s.darkMode, fyne.NewMenuItemSeparator(), quit)
	return fyne.NewMainMenu(s.fileMenu)
}

func (s *AppState) quit() {
	s.saveState()
	s.app.Quit()
}
