package storage

import (
	"context"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// SubscribeAllWorkouts pushes AllWorkouts now and after every workout write.
func (s *Storage) SubscribeAllWorkouts(ctx context.Context) <-chan []models.Workout {
	return watch(ctx, s, TableWorkouts, s.AllWorkouts)
}

// SubscribeExerciseHistory pushes ExerciseHistory(name) now and after every
// workout write.
func (s *Storage) SubscribeExerciseHistory(ctx context.Context, name string) <-chan []models.Set {
	return watch(ctx, s, TableWorkouts, func(ctx context.Context) ([]models.Set, error) {
		return s.ExerciseHistory(ctx, name)
	})
}

// SubscribeAllCreatedExercises pushes the catalog now and after every
// catalog write.
func (s *Storage) SubscribeAllCreatedExercises(ctx context.Context) <-chan []models.Exercise {
	return watch(ctx, s, TableCreatedExercises, s.AllCreatedExercises)
}

// watch re-runs load whenever table changes and keeps only the newest
// result in the returned channel, so the store never waits on a slow
// reader. The channel is closed when ctx is done or the store is closed.
func watch[T any](ctx context.Context, s *Storage, table Table, load func(context.Context) (T, error)) <-chan T {
	out := make(chan T, 1)
	// Subscribe before the first load so no write can slip in between.
	changes := s.changes.Subscribe(ctx)

	push := func() {
		v, err := load(ctx)
		if err != nil {
			if ctx.Err() == nil {
				s.log.Warn("subscription query failed", "table", table, "error", err)
			}
			return
		}
		select {
		case <-out:
		default:
		}
		out <- v
	}

	go func() {
		defer close(out)
		push()
		for ev := range changes {
			if ev.Payload.Table == table {
				push()
			}
		}
	}()
	return out
}
