package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("3", "exercise")
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	for _, bad := range []string{"0", "-1", "two", ""} {
		_, err := ParseIndex(bad, "set")
		require.Error(t, err, bad)
	}
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, "00:00", FormatElapsed(-time.Second))
	require.Equal(t, "00:59", FormatElapsed(59*time.Second+900*time.Millisecond))
	require.Equal(t, "47:12", FormatElapsed(47*time.Minute+12*time.Second))
	require.Equal(t, "125:00", FormatElapsed(125*time.Minute))
}

func TestCalculateEpley1RM(t *testing.T) {
	require.Equal(t, float32(0), CalculateEpley1RM(100, 0))
	require.InDelta(t, 116.67, CalculateEpley1RM(100, 5), 0.01)
}

type fileState struct {
	Exercises []string          `toml:"exercises"`
	Notes     map[string]string `toml:"notes"`
}

func TestSessionStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")

	var missing fileState
	require.ErrorIs(t, LoadSessionState(path, &missing), ErrNoSession)
	require.False(t, SessionExists(path))

	want := fileState{Exercises: []string{"Squats", "Bench Press"}, Notes: map[string]string{"Squats": "belt"}}
	require.NoError(t, SaveSessionState(path, want))
	require.True(t, SessionExists(path))

	var got fileState
	require.NoError(t, LoadSessionState(path, &got))
	require.Equal(t, want, got)

	require.NoError(t, ClearSessionState(path))
	require.False(t, SessionExists(path))
	require.NoError(t, ClearSessionState(path), "clearing twice is fine")
}
