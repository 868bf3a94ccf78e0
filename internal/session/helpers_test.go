package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

var t0 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

// sequentialIDs returns a generator producing s1, s2, s3, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession() (*Session, *fakeClock) {
	clock := &fakeClock{now: t0}
	s := New(
		WithIDGenerator(sequentialIDs()),
		WithClock(clock.Now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return s, clock
}

type fakeHistory struct {
	sets  map[string][]models.Set
	calls int
	err   error
}

func (f *fakeHistory) ExerciseHistory(_ context.Context, name string) ([]models.Set, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sets[name], nil
}

type fakeInserter struct {
	err     error
	saved   []*models.Workout
	nextID  int64
}

func (f *fakeInserter) InsertWorkout(_ context.Context, w *models.Workout) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	w.ID = f.nextID
	f.saved = append(f.saved, w)
	return nil
}
