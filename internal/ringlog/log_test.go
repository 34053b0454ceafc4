package ringlog

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTextSplitsLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"trailing\n", []string{"trailing"}},
		{"crlf\r\nline\r\n", []string{"crlf", "line"}},
		{"\n\nHEADER\n\n", []string{"", "", "HEADER", ""}},
		{"\n", []string{""}},
	}

	for _, tt := range tests {
		l := NewLog(10)
		l.AddText(tt.input)
		assert.Equal(t, tt.want, slices.Collect(l.Lines()), "AddText(%q)", tt.input)
	}
}

func TestAddTextEmptyIsNoop(t *testing.T) {
	l := NewLog(3)
	l.AddText("")
	assert.True(t, l.IsEmpty())

	l.AddText("a")
	before, err := json.Marshal(l)
	require.NoError(t, err)

	l.AddText("")
	after, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestAddTextEvictsAcrossCalls(t *testing.T) {
	l := NewLog(3)
	l.AddText("1\n2")
	l.AddText("3\n4\n5")

	assert.Equal(t, []string{"3", "4", "5"}, l.GetLastN(3))
	assert.Equal(t, "3\n4\n5", l.String())
}

func TestLogClear(t *testing.T) {
	l := NewLog(2)
	l.AddText("a\nb")
	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, "", l.String())
	assert.Equal(t, 2, l.Cap())
}

func TestLogJSONRoundTrip(t *testing.T) {
	l := NewLog(2)
	l.AddText("x\ny\nz")

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[2, ["y", "z"]]`, string(data))

	restored := NewLog(1000)
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, 2, restored.Cap())
	assert.Equal(t, []string{"y", "z"}, slices.Collect(restored.Lines()))

	again, err := json.Marshal(restored)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestLogUnmarshalKeepsStateOnError(t *testing.T) {
	l := NewLog(2)
	l.Push("kept")

	assert.Error(t, json.Unmarshal([]byte(`[0, []]`), l))
	assert.Equal(t, []string{"kept"}, l.GetLastN(5))
}
