package state

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trash-manager/internal/config"
)

var _ Store = fyne.Preferences(nil)

type mapStore map[string]string

func (m mapStore) String(key string) string { return m[key] }
func (m mapStore) SetString(key string, value string) { m[key] = value }

func TestLoadWithoutSavedState(t *testing.T) {
	st, err := Load(mapStore{}, config.DefaultSettings())

	assert.True(t, errors.Is(err, ErrNoState))
	assert.Equal(t, config.DefaultSettings(), st.Settings)
	assert.Equal(t, 1000, st.Console.Queue.Cap())
	assert.True(t, st.Console.Queue.IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := mapStore{}
	st := Default(config.Settings{PreserveDays: 12, MaxConsoleLines: 3})
	st.Console.Queue.AddText("one\ntwo\nthree\nfour")

	require.NoError(t, Save(store, st))
	assert.JSONEq(t,
		`{"config_app":{"time_threshold":12,"max_console_lines":3},"console_app":{"console_queue":[3,["two","three","four"]]}}`,
		store[Key])

	loaded, err := Load(store, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, st.Settings, loaded.Settings)
	assert.Equal(t, []string{"two", "three", "four"}, slices.Collect(loaded.Console.Queue.Lines()))

	require.NoError(t, Save(store, loaded))
	again, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.Equal(t, store[Key], string(again))
}

func TestLoadFallsBackOnMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"wrong type", `{"config_app":{"time_threshold":"thirty"}}`},
		{"threshold overflow", `{"config_app":{"time_threshold":300}}`},
		{"zero capacity", `{"console_app":{"console_queue":[0,[]]}}`},
		{"bad queue shape", `{"console_app":{"console_queue":{"lines":[]}}}`},
		{"huge capacity", `{"console_app":{"console_queue":[100000000000000,[]]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				st  *AppState
				err error
			)
			require.NotPanics(t, func() {
				st, err = Load(mapStore{Key: tt.raw}, config.DefaultSettings())
			})
			assert.Error(t, err)
			require.NotNil(t, st)
			assert.Equal(t, config.DefaultSettings(), st.Settings)
			assert.Equal(t, 1000, st.Console.Queue.Cap())
		})
	}
}

func TestLoadMissingFieldsKeepDefaults(t *testing.T) {
	st, err := Load(mapStore{Key: `{"config_app":{"time_threshold":7},"unknown":true}`}, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, uint8(7), st.Settings.PreserveDays)
	assert.Equal(t, uint16(1000), st.Settings.MaxConsoleLines)
	assert.Equal(t, 1000, st.Console.Queue.Cap())

	st, err = Load(mapStore{Key: `{"console_app":{"console_queue":null}}`}, config.DefaultSettings())
	require.NoError(t, err)
	assert.NotNil(t, st.Console.Queue)
}

func TestLoadClampsSettings(t *testing.T) {
	st, err := Load(mapStore{Key: `{"config_app":{"time_threshold":0,"max_console_lines":0}}`}, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, uint8(1), st.Settings.PreserveDays)
	assert.Equal(t, uint16(1000), st.Settings.MaxConsoleLines)
}

func TestFynePreferencesStore(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	st := Default(config.DefaultSettings())
	st.Console.Queue.AddText("persisted")
	require.NoError(t, Save(a.Preferences(), st))

	loaded, err := Load(a.Preferences(), config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "persisted", loaded.Console.Queue.String())
}
