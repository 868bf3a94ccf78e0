package storage

import (
	"context"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// ExerciseHistory returns the sets logged for name in the most recent
// workout (by date) that contains it, in insertion order. The slice is
// empty when the exercise was never performed.
func (s *Storage) ExerciseHistory(ctx context.Context, name string) ([]models.Set, error) {
	return s.querySets(ctx, `
		SELECT sets.id, sets.exercise_id, sets.kg, sets.reps, sets.rir
		FROM sets
		JOIN workout_exercises ON sets.exercise_id = workout_exercises.id
		JOIN workouts ON workout_exercises.workout_id = workouts.id
		WHERE workout_exercises.name = ?
		AND workouts.date = (
			SELECT MAX(workouts.date) FROM workouts
			JOIN workout_exercises ON workouts.id = workout_exercises.workout_id
			WHERE workout_exercises.name = ?
		)
		ORDER BY sets.id ASC`,
		name, name,
	)
}
