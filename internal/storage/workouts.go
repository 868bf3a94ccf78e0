package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// InsertWorkout stores w with all of its exercises and sets in a single
// transaction and fills in the ids it was given. Nothing is written when
// any part fails.
func (s *Storage) InsertWorkout(ctx context.Context, w *models.Workout) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	date := w.Date.UnixMilli()
	var workoutID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO workouts (name, date, duration, note)
		VALUES (?, ?, ?, ?)
		RETURNING id`,
		w.Name, date, w.Duration, w.Note,
	).Scan(&workoutID)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}

	exercises := make([]models.WorkoutExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		var exerciseID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO workout_exercises (workout_id, name, note)
			VALUES (?, ?, ?)
			RETURNING id`,
			workoutID, ex.Name, ex.Note,
		).Scan(&exerciseID)
		if err != nil {
			return fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
		}

		sets := make([]models.Set, len(ex.Sets))
		for j, set := range ex.Sets {
			var setID int64
			err := tx.QueryRowContext(ctx,
				`INSERT INTO sets (exercise_id, kg, reps, rir)
				VALUES (?, ?, ?, ?)
				RETURNING id`,
				exerciseID, set.Kg, set.Reps, set.RIR,
			).Scan(&setID)
			if err != nil {
				return fmt.Errorf("inserting set %d of %q: %w", j+1, ex.Name, err)
			}
			set.ID = setID
			set.ExerciseID = exerciseID
			sets[j] = set
		}

		ex.ID = exerciseID
		ex.WorkoutID = workoutID
		ex.Sets = sets
		exercises[i] = ex
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing workout: %w", err)
	}

	w.ID = workoutID
	w.Date = time.UnixMilli(date).UTC()
	w.Exercises = exercises
	s.log.Debug("workout inserted", "id", workoutID, "exercises", len(exercises))
	s.notify(TableWorkouts)
	return nil
}

// AllWorkouts returns every workout, newest first, with exercises and sets
// in insertion order.
func (s *Storage) AllWorkouts(ctx context.Context) ([]models.Workout, error) {
	return s.queryWorkouts(ctx, "1 = 1")
}

// WorkoutsBetween returns the workouts dated within [from, to), newest first.
func (s *Storage) WorkoutsBetween(ctx context.Context, from, to time.Time) ([]models.Workout, error) {
	return s.queryWorkouts(ctx, "date >= ? AND date < ?", from.UnixMilli(), to.UnixMilli())
}

func (s *Storage) Workout(ctx context.Context, id int64) (*models.Workout, error) {
	workouts, err := s.queryWorkouts(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}
	return &workouts[0], nil
}

// DeleteWorkout removes a workout. Its exercises and sets go with it
// through the foreign key cascade.
func (s *Storage) DeleteWorkout(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting workout %d: %w", id, err)
	}
	if n == 0 {
		return ErrWorkoutNotFound
	}
	s.log.Debug("workout deleted", "id", id)
	s.notify(TableWorkouts)
	return nil
}

// queryWorkouts loads the workouts matching filter (a WHERE clause over the
// workouts table) together with their exercises and sets.
func (s *Storage) queryWorkouts(ctx context.Context, filter string, args ...any) ([]models.Workout, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, date, duration, note FROM workouts
		WHERE `+filter+`
		ORDER BY date DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	index := make(map[int64]int)
	for rows.Next() {
		var w models.Workout
		var date int64
		if err := rows.Scan(&w.ID, &w.Name, &date, &w.Duration, &w.Note); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		w.Date = time.UnixMilli(date).UTC()
		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	exercises, err := s.loadExercises(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		if i, ok := index[ex.WorkoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, ex)
		}
	}
	return workouts, nil
}

// loadExercises reads the exercises, with their sets, of the workouts
// matching filter. Both are ordered by id.
func (s *Storage) loadExercises(ctx context.Context, filter string, args ...any) ([]models.WorkoutExercise, error) {
	workoutIDs := `SELECT id FROM workouts WHERE ` + filter
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, workout_id, name, note FROM workout_exercises
		WHERE workout_id IN (`+workoutIDs+`)
		ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.WorkoutExercise
	index := make(map[int64]int)
	for rows.Next() {
		var ex models.WorkoutExercise
		if err := rows.Scan(&ex.ID, &ex.WorkoutID, &ex.Name, &ex.Note); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		index[ex.ID] = len(exercises)
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}

	sets, err := s.querySets(ctx,
		`SELECT id, exercise_id, kg, reps, rir FROM sets
		WHERE exercise_id IN (SELECT id FROM workout_exercises WHERE workout_id IN (`+workoutIDs+`))
		ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	for _, set := range sets {
		if i, ok := index[set.ExerciseID]; ok {
			exercises[i].Sets = append(exercises[i].Sets, set)
		}
	}
	return exercises, nil
}

func (s *Storage) querySets(ctx context.Context, query string, args ...any) ([]models.Set, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer rows.Close()

	sets := []models.Set{}
	for rows.Next() {
		var set models.Set
		if err := rows.Scan(&set.ID, &set.ExerciseID, &set.Kg, &set.Reps, &set.RIR); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sets: %w", err)
	}
	return sets, nil
}
