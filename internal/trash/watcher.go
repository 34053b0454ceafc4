package trash

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses bursts of changes, such as a bulk purge, into one callback.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports changes to a trash info directory.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *logrus.Entry
}

// NewWatcher watches dir for .trashinfo changes. dir must exist.
func NewWatcher(dir string, debounce time.Duration, logger *logrus.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logger.WithFields(logrus.Fields{"component": "trash_watcher", "dir": dir}),
	}, nil
}

// Run calls onChange, debounced, after .trashinfo files appear, change or
// disappear. onChange runs on its own goroutine. Run blocks until Close.
func (w *Watcher) Run(onChange func()) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.logger.Info("Trash watcher started")
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				w.logger.Info("Trash watcher stopped")
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.WithFields(logrus.Fields{"path": event.Name, "op": event.Op.String()}).Debug("Trash changed")

			if timer == nil {
				timer = time.AfterFunc(w.debounce, onChange)
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Trash watcher error")
		}
	}
}

// Close stops the watcher and makes Run return.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return strings.HasSuffix(filepath.Base(event.Name), infoSuffix)
}
