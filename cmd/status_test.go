package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/models"
)

func TestParseWorkoutDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"47:12", 47*time.Minute + 12*time.Second},
		{"125:00", 125 * time.Minute},
		{"00:00", 0},
		{"", 0},
		{"abc", 0},
		{"-1:10", 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, parseWorkoutDuration(tt.in), tt.in)
	}
}

func TestComputeWeekStreak(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC) // Wednesday
	week := 7 * 24 * time.Hour

	require.Equal(t, 0, computeWeekStreak(nil, now))
	require.Equal(t, 1, computeWeekStreak([]time.Time{now.Add(-24 * time.Hour)}, now))
	require.Equal(t, 3, computeWeekStreak([]time.Time{now, now.Add(-week), now.Add(-2 * week), now.Add(-4 * week)}, now))
	require.Equal(t, 0, computeWeekStreak([]time.Time{now.Add(-week)}, now), "the current week must have a workout")
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{Date: now, Duration: "50:00", Exercises: []models.WorkoutExercise{
			{Name: "Bench Press", Sets: []models.Set{{Kg: 100, Reps: 5}, {Kg: 100, Reps: 5}}},
			{Name: "Mystery Move", Sets: []models.Set{{Kg: 10, Reps: 10}}},
		}},
		{Date: now.AddDate(0, 0, -14), Duration: "10:00", Exercises: []models.WorkoutExercise{
			{Name: "Bench Press", Sets: []models.Set{{Kg: 50, Reps: 10}}},
		}},
	}

	sum := summarize(workouts, map[string]string{"Bench Press": "Chest"}, now)
	require.Equal(t, 1000+100+500, sum.volume)
	require.Equal(t, time.Hour, sum.duration)
	require.Equal(t, 1, sum.weekStreak)
	require.Equal(t, map[string]int{"Chest": 2, "Other": 1}, sum.setsThisWeek)
}

func TestMainBodyPart(t *testing.T) {
	parts := map[string]string{"Bench Press": "Chest", "Back Squat": "Legs"}
	workouts := []models.Workout{{Exercises: []models.WorkoutExercise{
		{Name: "Bench Press", Sets: make([]models.Set, 2)},
		{Name: "Back Squat", Sets: make([]models.Set, 2)},
	}}}
	require.Equal(t, "Chest", mainBodyPart(workouts, parts), "ties go to the first name")

	workouts[0].Exercises = append(workouts[0].Exercises, models.WorkoutExercise{Name: "Lunge", Sets: make([]models.Set, 5)})
	require.Equal(t, "Other", mainBodyPart(workouts, parts))
}

func TestParseDay(t *testing.T) {
	want := time.Date(2025, 2, 7, 0, 0, 0, 0, time.Local)
	for _, in := range []string{"2025-02-07", "07/02/25"} {
		got, err := parseDay(in)
		require.NoError(t, err, in)
		require.True(t, want.Equal(got), in)
	}
	_, err := parseDay("Feb 7")
	require.Error(t, err)
}

func TestWorkoutsWithAndBestSet(t *testing.T) {
	workouts := []models.Workout{
		{ID: 2, Exercises: []models.WorkoutExercise{{Name: "Bench Press", Sets: []models.Set{{Kg: 100, Reps: 3}, {Kg: 90, Reps: 8}}}}},
		{ID: 1, Exercises: []models.WorkoutExercise{{Name: "Back Squat", Sets: []models.Set{{Kg: 140, Reps: 5}}}}},
	}
	with := workoutsWith(workouts, "Bench Press")
	require.Len(t, with, 1)
	require.Equal(t, int64(2), with[0].ID)

	best, ok := bestSet(workouts, "Bench Press")
	require.True(t, ok)
	require.Equal(t, 90, best.Kg, "90x8 beats 100x3 on estimated 1RM")
	_, ok = bestSet(workouts, "Deadlift")
	require.False(t, ok)
}
