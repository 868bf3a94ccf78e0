// Package tui renders the rest countdown in the terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/misterclayt0n/liftlog/internal/timer"
)

const maxBarWidth = 60

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	timeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9ECE6A"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	barContainer = lipgloss.NewStyle().PaddingTop(1)
)

// TickMsg advances the countdown to the carried time.
type TickMsg time.Time

// RestModel shows one running rest timer: the remaining time and a bar that
// drains towards zero. It quits on expiry or when the user leaves.
type RestModel struct {
	label     string
	countdown *timer.Countdown
	since     time.Time
	interval  time.Duration
	bar       progress.Model
	bell      io.Writer
	last      timer.Tick
	expired   bool
	quit      bool
}

// NewRestModel builds a countdown of total that started at since.
// interval is the refresh cadence.
func NewRestModel(label string, total time.Duration, since time.Time, interval time.Duration) RestModel {
	if interval <= 0 {
		interval = timer.DefaultTickInterval
	}
	cd := timer.NewCountdown(total)
	return RestModel{
		label:     label,
		countdown: cd,
		since:     since,
		interval:  interval,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
		bell:      os.Stderr,
		last:      timer.Tick{Remaining: cd.Total(), Progress: 1},
	}
}

// WithBell redirects the completion bell, mostly for tests.
func (m RestModel) WithBell(w io.Writer) RestModel {
	m.bell = w
	return m
}

func (m RestModel) Init() tea.Cmd {
	m.countdown.Start(m.since)
	return m.tick()
}

func (m RestModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m RestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.countdown.Cancel()
			m.quit = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-4, maxBarWidth), 10)
		return m, nil

	case TickMsg:
		if m.quit || m.expired {
			return m, nil
		}
		m.countdown.Start(m.since)
		m.last = m.countdown.Advance(time.Time(msg))
		if m.last.Cue && m.bell != nil {
			fmt.Fprint(m.bell, "\a")
		}
		if m.last.Expired {
			m.expired = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m RestModel) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("  ")
	if m.expired {
		b.WriteString(doneStyle.Render("rest over"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(timeStyle.Render(timer.Format(m.last.Remaining)))
	b.WriteString(barContainer.Render(m.bar.ViewAs(m.last.Progress)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: leave the timer running in the background"))
	b.WriteString("\n")
	return b.String()
}

// Expired reports whether the countdown reached zero.
func (m RestModel) Expired() bool { return m.expired }

// Remaining is the last rendered remaining time.
func (m RestModel) Remaining() time.Duration { return m.last.Remaining }

// RunRest shows m until the countdown expires, the user quits or ctx is
// cancelled. It reports whether the countdown expired.
func RunRest(ctx context.Context, m RestModel, opts ...tea.ProgramOption) (bool, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, fmt.Errorf("running rest timer: %w", err)
	}
	rm, ok := final.(RestModel)
	return ok && rm.Expired(), nil
}
