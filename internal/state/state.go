// Package state persists the application state between runs.
package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"trash-manager/internal/config"
	"trash-manager/internal/ringlog"
)

// Key is the storage slot the state lives under.
const Key = "app"

// ErrNoState is returned by Load when nothing has been saved yet.
var ErrNoState = errors.New("no saved state")

// Store is a string key-value store. fyne.Preferences satisfies it.
type Store interface {
	String(key string) string
	SetString(key string, value string)
}

// Console holds the console lines.
type Console struct {
	Queue *ringlog.Log `json:"console_queue"`
}

// AppState is everything saved on shutdown.
// New fields must have a usable default: older saves will not contain them.
type AppState struct {
	Settings config.Settings `json:"config_app"`
	Console  Console         `json:"console_app"`
}

// Default builds a fresh state from settings.
func Default(settings config.Settings) *AppState {
	settings.Validate()
	return &AppState{
		Settings: settings,
		Console:  Console{Queue: ringlog.NewLog(int(settings.MaxConsoleLines))},
	}
}

// Load restores the state saved under Key. When nothing is saved or the
// saved value does not match the schema, it returns Default(defaults)
// together with the reason.
func Load(store Store, defaults config.Settings) (*AppState, error) {
	raw := store.String(Key)
	if raw == "" {
		return Default(defaults), ErrNoState
	}

	st, err := Decode([]byte(raw), defaults)
	if err != nil {
		return Default(defaults), err
	}
	return st, nil
}

// Decode parses a saved state. Fields missing from data keep the values of
// Default(defaults).
func Decode(data []byte, defaults config.Settings) (*AppState, error) {
	st := Default(defaults)
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if st.Console.Queue == nil {
		st.Console.Queue = ringlog.NewLog(int(st.Settings.MaxConsoleLines))
	}
	st.Settings.Validate()
	return st, nil
}

// Save writes st under Key.
func Save(store Store, st *AppState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	store.SetString(Key, string(data))
	return nil
}
