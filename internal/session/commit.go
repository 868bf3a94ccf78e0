package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/pubsub"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

var ErrEmptyWorkout = errors.New("complete at least one set in order to finish the workout")

// WorkoutInserter persists a finished workout and fills in its ids.
type WorkoutInserter interface {
	InsertWorkout(ctx context.Context, w *models.Workout) error
}

// buildWorkout turns the session into an unsaved workout record.
func (s *Session) buildWorkout(name, note string) (*models.Workout, error) {
	if !s.state.HasSets() {
		return nil, ErrEmptyWorkout
	}
	now := s.now()
	w := &models.Workout{
		Name:     name,
		Date:     now.UTC(),
		Duration: utils.FormatElapsed(s.state.Elapsed(now)),
		Note:     note,
	}
	for _, exName := range s.state.ExercisesWithSets() {
		ex := models.WorkoutExercise{Name: exName, Note: s.state.Note(exName)}
		for _, set := range s.state.Sets(exName) {
			ex.Sets = append(ex.Sets, models.Set{Kg: set.Kg, Reps: set.Reps, RIR: set.RIR})
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w, nil
}

// Finish commits the session through store and clears it. When the insert
// fails the session is kept so the user can try again. The lock is not held
// during the insert.
func (s *Session) Finish(ctx context.Context, store WorkoutInserter, name, note string) (*models.Workout, error) {
	s.mu.Lock()
	w, err := s.buildWorkout(name, note)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := store.InsertWorkout(ctx, w); err != nil {
		s.log.Error("workout commit failed", "workout", name, "error", err)
		return nil, fmt.Errorf("failed to save workout: %w", err)
	}
	s.log.Info("workout committed", "workout", name, "id", w.ID, "exercises", len(w.Exercises))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.publish(pubsub.DeletedEvent)
	return w, nil
}

// NextWorkoutName returns "Workout N" where N is one past the highest
// number already used by a workout named that way.
func NextWorkoutName(workouts []models.Workout) string {
	highest := 0
	for _, w := range workouts {
		rest, ok := strings.CutPrefix(w.Name, "Workout ")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("Workout %d", highest+1)
}
