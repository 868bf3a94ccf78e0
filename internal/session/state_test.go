package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/models"
)

func newTestState() *State {
	return NewState(sequentialIDs())
}

func TestState_InitializeExerciseIsIdempotent(t *testing.T) {
	s := newTestState()
	s.AddExercise("Squats")

	require.True(t, s.InitializeExercise("Squats", nil))
	require.False(t, s.InitializeExercise("Squats", nil))

	sets := s.Sets("Squats")
	require.Len(t, sets, 1)
	require.Equal(t, models.SessionSet{ID: "s1"}, sets[0])
}

func TestState_InitializeExerciseFromHistory(t *testing.T) {
	s := newTestState()
	history := []models.Set{
		{ID: 7, Kg: 100, Reps: 5, RIR: 2},
		{ID: 8, Kg: 105, Reps: 3, RIR: 1},
	}

	s.InitializeExercise("Bench Press", history)

	sets := s.Sets("Bench Press")
	require.Equal(t, []models.SessionSet{
		{ID: "s1", Kg: 100, Reps: 5, RIR: 2},
		{ID: "s2", Kg: 105, Reps: 3, RIR: 1},
	}, sets)
}

func TestState_UpdateSetKeepsIDAndReplacesSlice(t *testing.T) {
	s := newTestState()
	s.InitializeExercise("Deadlift", nil)
	before := s.Sets("Deadlift")

	updated, ok := s.UpdateSet("Deadlift", 0, 180, 5, 1)
	require.True(t, ok)
	require.Equal(t, models.SessionSet{ID: "s1", Kg: 180, Reps: 5, RIR: 1}, updated)

	after := s.Sets("Deadlift")
	require.Equal(t, 0, before[0].Kg, "old slice must be left untouched")
	require.Equal(t, 180, after[0].Kg)
}

func TestState_UpdateSetClamps(t *testing.T) {
	s := newTestState()
	s.InitializeExercise("Deadlift", nil)

	updated, ok := s.UpdateSet("Deadlift", 0, 5000, -3, 1000)
	require.True(t, ok)
	require.Equal(t, models.MaxSetValue, updated.Kg)
	require.Equal(t, 0, updated.Reps)
	require.Equal(t, models.MaxSetValue, updated.RIR)
}

func TestState_ReferentialNoOps(t *testing.T) {
	s := newTestState()
	s.InitializeExercise("Deadlift", nil)

	_, ok := s.UpdateSet("Deadlift", 3, 1, 1, 1)
	require.False(t, ok)
	_, ok = s.UpdateSet("Deadlift", -1, 1, 1, 1)
	require.False(t, ok)
	_, ok = s.UpdateSet("Missing", 0, 1, 1, 1)
	require.False(t, ok)
	_, ok = s.AddSet("Missing")
	require.False(t, ok)
	require.False(t, s.SetNote("Missing", "note"))
	require.Empty(t, s.RemoveExercise("Missing"))
	require.Len(t, s.Sets("Deadlift"), 1)
}

func TestState_AddSetAppendsZeroSet(t *testing.T) {
	s := newTestState()
	s.InitializeExercise("Rows", []models.Set{{Kg: 60, Reps: 10}})
	before := s.Sets("Rows")

	set, ok := s.AddSet("Rows")
	require.True(t, ok)
	require.Equal(t, models.SessionSet{ID: "s2"}, set)
	require.Len(t, s.Sets("Rows"), 2)
	require.Len(t, before, 1)
}

func TestState_AddAndRemoveExercise(t *testing.T) {
	s := newTestState()
	require.True(t, s.AddExercise("Squats"))
	require.False(t, s.AddExercise("Squats"))
	require.True(t, s.AddExercise("Bench Press"))
	s.InitializeExercise("Squats", nil)
	s.SetNote("Squats", "knees out")

	ids := s.RemoveExercise("Squats")

	require.Equal(t, []string{"s1"}, ids)
	require.Equal(t, []string{"Bench Press"}, s.Exercises())
	require.Nil(t, s.Sets("Squats"))
	require.Equal(t, "", s.Note("Squats"))
}

func TestState_ReplaceExercise(t *testing.T) {
	s := newTestState()
	s.AddExercise("Squats")
	s.AddExercise("Bench Press")
	s.InitializeExercise("Squats", nil)

	old, ids, ok := s.ReplaceExercise(0, "Front Squat")
	require.True(t, ok)
	require.Equal(t, "Squats", old)
	require.Equal(t, []string{"s1"}, ids)
	require.Equal(t, []string{"Front Squat", "Bench Press"}, s.Exercises())

	_, _, ok = s.ReplaceExercise(0, "Bench Press")
	require.False(t, ok, "cannot swap to an exercise already in the session")
	_, _, ok = s.ReplaceExercise(9, "Lunges")
	require.False(t, ok)
}

func TestState_StartWorkoutRegeneratesIDs(t *testing.T) {
	s := newTestState()
	s.AddExercise("Old")
	s.InitializeExercise("Old", nil)

	s.StartWorkout(
		[]string{"Bench Press", "Squats"},
		[][]models.SessionSet{
			{{ID: "keep-me", Kg: 80, Reps: 8, RIR: 2}},
			{{Kg: 120, Reps: 5}, {Kg: 120, Reps: 5}},
		},
		t0,
	)

	require.Equal(t, []string{"Bench Press", "Squats"}, s.Exercises())
	require.Nil(t, s.Sets("Old"))
	require.Equal(t, []models.SessionSet{{ID: "s2", Kg: 80, Reps: 8, RIR: 2}}, s.Sets("Bench Press"))
	require.Len(t, s.Sets("Squats"), 2)
	require.Equal(t, t0, s.StartedAt())
}

func TestState_ExercisesWithSetsFollowsSessionOrder(t *testing.T) {
	s := newTestState()
	s.AddExercise("B")
	s.AddExercise("A")
	s.AddExercise("C")
	s.InitializeExercise("C", nil)
	s.InitializeExercise("B", nil)
	s.InitializeExercise("Z", nil)

	require.Equal(t, []string{"B", "C", "Z"}, s.ExercisesWithSets())
}
