package models

import "time"

// MaxSetValue is the upper bound for kg, reps and rir on a single set.
const MaxSetValue = 999

type Workout struct {
	ID        int64             `json:"id" toml:"id"`
	Name      string            `json:"name" toml:"name"`
	Date      time.Time         `json:"date" toml:"date"`
	Duration  string            `json:"duration" toml:"duration"` // Formatted elapsed time, e.g. "47:12".
	Note      string            `json:"note" toml:"note"`
	Exercises []WorkoutExercise `json:"exercises" toml:"exercises"`
}

type WorkoutExercise struct {
	ID        int64  `json:"id" toml:"id"`
	WorkoutID int64  `json:"workout_id" toml:"workout_id"`
	Name      string `json:"name" toml:"name"`
	Note      string `json:"note" toml:"note"`
	Sets      []Set  `json:"sets" toml:"sets"`
}

type Set struct {
	ID         int64 `json:"id" toml:"id"`
	ExerciseID int64 `json:"exercise_id" toml:"exercise_id"`
	Kg         int   `json:"kg" toml:"kg"`
	Reps       int   `json:"reps" toml:"reps"`
	RIR        int   `json:"rir" toml:"rir"`
}

// SetCount returns the number of sets across all exercises.
func (w Workout) SetCount() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// Volume returns the total kg*reps lifted in the workout.
func (w Workout) Volume() int {
	total := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			total += s.Kg * s.Reps
		}
	}
	return total
}

// ClampSetValue bounds a numeric set field to [0, MaxSetValue].
func ClampSetValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSetValue {
		return MaxSetValue
	}
	return v
}
