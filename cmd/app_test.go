package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/logging"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// useTempApp points the commands at a fresh database and session file.
func useTempApp(t *testing.T) *app {
	t.Helper()
	cfg := config.Default(t.TempDir())
	log, closer, err := logging.New("error", "", false)
	require.NoError(t, err)
	current = &app{cfg: cfg, log: log, closer: closer}
	t.Cleanup(teardown)
	return current
}

// run executes one command line. Flag values live in package variables, so
// they are reset first to keep earlier runs from leaking in.
func run(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestWorkoutFlow(t *testing.T) {
	a := useTempApp(t)
	ctx := context.Background()

	require.NoError(t, run(t, "init"))
	require.NoError(t, run(t, "start-session"))
	require.Error(t, run(t, "start-session"), "a second session needs --force")
	require.NoError(t, run(t, "add", "bench press", "Back Squat"))
	require.Error(t, run(t, "add", "Not An Exercise"))

	s, err := a.loadSession()
	require.NoError(t, err)
	require.Equal(t, []string{"Bench Press", "Back Squat"}, s.Exercises())
	require.Len(t, s.Sets("Bench Press"), 1, "no history means one empty set")

	require.NoError(t, run(t, "add-set", "1"))
	require.NoError(t, run(t, "edit-set", "1", "2", "--kg", "80"))
	require.NoError(t, run(t, "remove", "2"))
	require.Error(t, run(t, "remove", "5"))

	s, err = a.loadSession()
	require.NoError(t, err)
	require.Equal(t, []string{"Bench Press"}, s.Exercises())
	require.Equal(t, 80, s.Sets("Bench Press")[1].Kg)

	require.Error(t, run(t, "end-session"), "sets not done")
	require.NoError(t, run(t, "done", "1", "1", "--no-timer", "--rest", "0130"))
	require.NoError(t, run(t, "done", "1", "2", "--no-timer"))

	s, err = a.loadSession()
	require.NoError(t, err)
	require.True(t, s.IsFullyDone())
	first := s.Sets("Bench Press")[0].ID
	active, _ := s.ActiveTimer()
	require.Equal(t, s.Sets("Bench Press")[1].ID, active)
	require.True(t, s.IsFinishedTimer(first))
	require.Equal(t, 90*time.Second, s.RestDuration(first))

	require.NoError(t, run(t, "end-session"))
	require.False(t, utils.SessionExists(a.cfg.Session.Path))

	workouts, err := a.store.AllWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Equal(t, "Workout 1", workouts[0].Name)
	require.Equal(t, 2, workouts[0].SetCount())
}

func TestDeleteWorkoutDiscardsRedo(t *testing.T) {
	a := useTempApp(t)
	ctx := context.Background()
	require.NoError(t, run(t, "init"))

	st, err := a.Store(ctx)
	require.NoError(t, err)
	w := &models.Workout{Name: "Push", Date: time.Now(), Duration: "10:00", Exercises: []models.WorkoutExercise{
		{Name: "Bench Press", Sets: []models.Set{{Kg: 60, Reps: 8, RIR: 2}}},
	}}
	require.NoError(t, st.InsertWorkout(ctx, w))

	require.NoError(t, run(t, "start-session", "--force", "--from", "1"))
	s, err := a.loadSession()
	require.NoError(t, err)
	require.Equal(t, int64(1), s.Source())
	require.Equal(t, 60, s.Sets("Bench Press")[0].Kg)

	require.NoError(t, run(t, "delete-workout", "1"))
	require.False(t, utils.SessionExists(a.cfg.Session.Path))
	require.Error(t, run(t, "delete-workout", "1"))
}

func TestExpireElapsed(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := session.New(session.WithClock(func() time.Time { return t0 }))
	s.StartWorkout([]string{"Squats"}, [][]models.SessionSet{{{Kg: 100, Reps: 5}}})
	id := s.Sets("Squats")[0].ID
	require.True(t, s.ToggleSelection("Squats", id))

	require.False(t, expireElapsed(s, t0.Add(time.Minute)))
	active, _ := s.ActiveTimer()
	require.Equal(t, id, active)

	require.True(t, expireElapsed(s, t0.Add(2*time.Minute)))
	active, _ = s.ActiveTimer()
	require.Empty(t, active)
	require.True(t, s.IsFinishedTimer(id))
	require.False(t, expireElapsed(s, t0.Add(3*time.Minute)))
}

func TestIndexArguments(t *testing.T) {
	s := session.New()
	s.StartWorkout([]string{"Squats", "Deadlift"}, [][]models.SessionSet{{{}, {}}, {{}}})

	idx, name, err := exerciseAt(s, "2")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, "Deadlift", name)
	_, _, err = exerciseAt(s, "3")
	require.Error(t, err)
	_, _, err = exerciseAt(s, "0")
	require.Error(t, err)

	setIdx, set, err := setAt(s, "Squats", "2")
	require.NoError(t, err)
	require.Equal(t, 1, setIdx)
	require.Equal(t, s.Sets("Squats")[1].ID, set.ID)
	_, _, err = setAt(s, "Deadlift", "2")
	require.Error(t, err)
}

func TestCatalogName(t *testing.T) {
	known := []models.Exercise{{Name: "Bench Press"}, {Name: "Back Squat"}}
	name, ok := catalogName(known, "  bench PRESS ")
	require.True(t, ok)
	require.Equal(t, "Bench Press", name)
	_, ok = catalogName(known, "Bench")
	require.False(t, ok)
}

func TestTableRowAlignsMarks(t *testing.T) {
	widths := []int{3, 4}
	require.Equal(t, "│1  │✔   │", tableRow(widths, "1", "✔"))
	require.Equal(t, "┌───┬────┐", tableBorder("┌", "┬", "┐", widths))
}

func TestRestLabel(t *testing.T) {
	s := session.New()
	s.StartWorkout([]string{"Squats"}, [][]models.SessionSet{{{}, {}}})
	require.Equal(t, "Squats · set 2", restLabel(s, s.Sets("Squats")[1].ID))
	require.Equal(t, "Rest", restLabel(s, "missing"))
}

func TestPlainCountdown(t *testing.T) {
	var out bytes.Buffer
	since := time.Now().Add(-1900 * time.Millisecond)
	expired := plainCountdown(context.Background(), &out, 2*time.Second, since, 10*time.Millisecond)

	require.True(t, expired)
	require.Contains(t, out.String(), "00:00")
	require.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\a")), "bell rings once")
}

func TestPlainCountdownCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.False(t, plainCountdown(ctx, &out, time.Minute, time.Now(), 10*time.Millisecond))
}
