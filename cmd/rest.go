package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/misterclayt0n/liftlog/internal/timer"
	"github.com/misterclayt0n/liftlog/internal/tui"
	"github.com/spf13/cobra"
)

var plainRest bool

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Show the running rest timer until it runs out",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		// Loading may have expired a timer that ran out in the meantime.
		if err := current.saveSession(s); err != nil {
			return err
		}
		return watchRest(cmd.Context(), s)
	},
}

// watchRest shows the active countdown of s. When it runs out the session
// file is reloaded before the timer is expired, so edits made from another
// terminal in the meantime survive.
func watchRest(ctx context.Context, s *session.Session) error {
	id, since := s.ActiveTimer()
	if id == "" {
		fmt.Println("No rest timer running")
		return nil
	}

	var expired bool
	if plainRest || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(restLabel(s, id))
		expired = plainCountdown(ctx, os.Stdout, s.RestDuration(id), since, current.cfg.Timer.TickInterval())
		fmt.Println()
	} else {
		m := tui.NewRestModel(restLabel(s, id), s.RestDuration(id), since, current.cfg.Timer.TickInterval())
		var err error
		expired, err = tui.RunRest(ctx, m)
		if err != nil {
			return err
		}
	}
	if !expired {
		fmt.Println("⏱️  Timer keeps running, resume it with 'liftlog rest'")
		return nil
	}

	fresh, err := current.loadSession()
	if err != nil {
		return err
	}
	fresh.ExpireTimer(id)
	return current.saveSession(fresh)
}

// plainCountdown prints the remaining time on one line, rewriting it each
// second, and rings the bell on the last second. It reports whether the
// countdown expired before ctx was cancelled.
func plainCountdown(ctx context.Context, w io.Writer, total time.Duration, since time.Time, interval time.Duration) bool {
	cd := timer.NewCountdown(total)
	cd.Start(since)
	last := ""
	return cd.RunEvery(ctx, interval, func(tick timer.Tick) {
		if text := timer.Format(tick.Remaining); text != last {
			last = text
			fmt.Fprintf(w, "\r⏱️  %s ", text)
		}
		if tick.Cue {
			fmt.Fprint(w, "\a")
		}
	})
}

// restLabel names the set owning a timer, e.g. "Squats · set 2".
func restLabel(s *session.Session, setID string) string {
	for _, name := range s.Exercises() {
		for i, set := range s.Sets(name) {
			if set.ID == setID {
				return fmt.Sprintf("%s · set %d", name, i+1)
			}
		}
	}
	return "Rest"
}

func restSummary(s *session.Session, setID string) string {
	return fmt.Sprintf("%s rest for %s", timer.Format(s.RestDuration(setID)), restLabel(s, setID))
}

func init() {
	restCmd.Flags().BoolVar(&plainRest, "plain", false, "Print the countdown as plain text")
	rootCmd.AddCommand(restCmd)
}
