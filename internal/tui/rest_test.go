package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func update(t *testing.T, m RestModel, msg tea.Msg) (RestModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(RestModel)
	require.True(t, ok)
	return rm, cmd
}

func TestRestModel_CountsDown(t *testing.T) {
	var bell bytes.Buffer
	m := NewRestModel("Bench Press set 1", 90*time.Second, t0, time.Second).WithBell(&bell)

	m, cmd := update(t, m, TickMsg(t0.Add(30*time.Second)))
	require.NotNil(t, cmd)
	require.Equal(t, 60*time.Second, m.Remaining())
	require.False(t, m.Expired())
	require.Contains(t, m.View(), "01:00")
	require.Empty(t, bell.String())

	m, _ = update(t, m, TickMsg(t0.Add(89*time.Second+500*time.Millisecond)))
	require.Equal(t, "\a", bell.String(), "bell rings once below one second")

	m, _ = update(t, m, TickMsg(t0.Add(89*time.Second+900*time.Millisecond)))
	require.Equal(t, "\a", bell.String())

	m, cmd = update(t, m, TickMsg(t0.Add(2*time.Minute)))
	require.True(t, m.Expired())
	require.Equal(t, time.Duration(0), m.Remaining())
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Contains(t, m.View(), "rest over")
}

func TestRestModel_ResumedAfterExpiryQuitsAtOnce(t *testing.T) {
	m := NewRestModel("Squats set 2", time.Minute, t0, time.Second).WithBell(&bytes.Buffer{})

	m, _ = update(t, m, TickMsg(t0.Add(5*time.Minute)))
	require.True(t, m.Expired())
}

func TestRestModel_QuitCancels(t *testing.T) {
	m := NewRestModel("Rows set 1", time.Minute, t0, time.Second).WithBell(&bytes.Buffer{})
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Second)))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.False(t, m.Expired())

	m, cmd = update(t, m, TickMsg(t0.Add(2*time.Minute)))
	require.Nil(t, cmd)
	require.False(t, m.Expired(), "a cancelled countdown never completes")
}

func TestRestModel_WindowResize(t *testing.T) {
	m := NewRestModel("Dips set 1", time.Minute, t0, time.Second)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	require.Equal(t, maxBarWidth, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 8, Height: 40})
	require.Equal(t, 10, m.bar.Width)
}
