package session

import (
	"sort"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// State is the working set of the workout being recorded: the ordered
// exercise names, the sets of each exercise and free-text notes.
//
// Every change to an exercise's sets installs a new slice, so a caller that
// kept the previous slice can detect the change by comparing identity and
// is never affected by later edits.
type State struct {
	exercises []string
	sets      map[string][]models.SessionSet
	notes     map[string]string
	startedAt time.Time
	source    int64
	newID     func() string
}

func NewState(newID func() string) *State {
	return &State{
		sets:  make(map[string][]models.SessionSet),
		notes: make(map[string]string),
		newID: newID,
	}
}

// StartWorkout replaces the session with the given exercises. setsPerExercise
// is matched to names by position; values are copied and ids regenerated.
// Exercises without a matching entry start with no sets.
func (s *State) StartWorkout(names []string, setsPerExercise [][]models.SessionSet, now time.Time) {
	s.Clear()
	s.startedAt = now
	for i, name := range names {
		if s.hasExercise(name) {
			continue
		}
		s.exercises = append(s.exercises, name)
		if i >= len(setsPerExercise) {
			continue
		}
		fresh := make([]models.SessionSet, 0, len(setsPerExercise[i]))
		for _, set := range setsPerExercise[i] {
			fresh = append(fresh, s.newSet(set.Kg, set.Reps, set.RIR))
		}
		s.sets[name] = fresh
	}
}

// InitializeExercise seeds an exercise that has no sets yet: one set per
// history set (values copied) or a single zero set when there is no history.
// It reports whether anything was seeded.
func (s *State) InitializeExercise(name string, history []models.Set) bool {
	if _, ok := s.sets[name]; ok {
		return false
	}
	var seeded []models.SessionSet
	for _, h := range history {
		seeded = append(seeded, s.newSet(h.Kg, h.Reps, h.RIR))
	}
	if len(seeded) == 0 {
		seeded = []models.SessionSet{s.newSet(0, 0, 0)}
	}
	s.sets[name] = seeded
	return true
}

// UpdateSet replaces the values of the set at index, keeping its id.
func (s *State) UpdateSet(name string, index, kg, reps, rir int) (models.SessionSet, bool) {
	current, ok := s.sets[name]
	if !ok || index < 0 || index >= len(current) {
		return models.SessionSet{}, false
	}
	updated := make([]models.SessionSet, len(current))
	copy(updated, current)
	updated[index] = models.SessionSet{
		ID:   current[index].ID,
		Kg:   models.ClampSetValue(kg),
		Reps: models.ClampSetValue(reps),
		RIR:  models.ClampSetValue(rir),
	}
	s.sets[name] = updated
	return updated[index], true
}

// AddSet appends a zero-valued set to an exercise that already has sets.
func (s *State) AddSet(name string) (models.SessionSet, bool) {
	current, ok := s.sets[name]
	if !ok {
		return models.SessionSet{}, false
	}
	set := s.newSet(0, 0, 0)
	updated := make([]models.SessionSet, len(current), len(current)+1)
	copy(updated, current)
	s.sets[name] = append(updated, set)
	return set, true
}

func (s *State) AddExercise(name string) bool {
	if name == "" || s.hasExercise(name) {
		return false
	}
	s.exercises = append(s.exercises, name)
	return true
}

// RemoveExercise drops the exercise with its sets and note and returns the
// ids of the sets that were dropped.
func (s *State) RemoveExercise(name string) []string {
	var ids []string
	for _, set := range s.sets[name] {
		ids = append(ids, set.ID)
	}
	kept := s.exercises[:0:0]
	for _, ex := range s.exercises {
		if ex != name {
			kept = append(kept, ex)
		}
	}
	s.exercises = kept
	delete(s.sets, name)
	delete(s.notes, name)
	return ids
}

// ReplaceExercise puts newName at the position of the exercise at index.
// The old exercise's sets and note are dropped and their set ids returned.
func (s *State) ReplaceExercise(index int, newName string) (string, []string, bool) {
	if index < 0 || index >= len(s.exercises) || newName == "" || s.hasExercise(newName) {
		return "", nil, false
	}
	old := s.exercises[index]
	var ids []string
	for _, set := range s.sets[old] {
		ids = append(ids, set.ID)
	}
	updated := make([]string, len(s.exercises))
	copy(updated, s.exercises)
	updated[index] = newName
	s.exercises = updated
	delete(s.sets, old)
	delete(s.notes, old)
	return old, ids, true
}

// SetNote upserts the note of an exercise that is part of the session.
func (s *State) SetNote(name, text string) bool {
	if !s.hasExercise(name) {
		if _, ok := s.sets[name]; !ok {
			return false
		}
	}
	s.notes[name] = text
	return true
}

func (s *State) Clear() {
	s.exercises = nil
	s.sets = make(map[string][]models.SessionSet)
	s.notes = make(map[string]string)
	s.startedAt = time.Time{}
	s.source = 0
}

func (s *State) Exercises() []string {
	out := make([]string, len(s.exercises))
	copy(out, s.exercises)
	return out
}

// Sets returns the current set slice of an exercise. It must not be modified.
func (s *State) Sets(name string) []models.SessionSet {
	return s.sets[name]
}

func (s *State) Note(name string) string {
	return s.notes[name]
}

func (s *State) StartedAt() time.Time {
	return s.startedAt
}

func (s *State) Elapsed(now time.Time) time.Duration {
	if s.startedAt.IsZero() || now.Before(s.startedAt) {
		return 0
	}
	return now.Sub(s.startedAt)
}

// Source is the id of the persisted workout this session was started from, or 0.
func (s *State) Source() int64 {
	return s.source
}

func (s *State) SetSource(id int64) {
	s.source = id
}

// FindSet looks a set up by id within an exercise.
func (s *State) FindSet(name, id string) (models.SessionSet, bool) {
	for _, set := range s.sets[name] {
		if set.ID == id {
			return set, true
		}
	}
	return models.SessionSet{}, false
}

// HasSets reports whether at least one set exists in the session.
func (s *State) HasSets() bool {
	for _, sets := range s.sets {
		if len(sets) > 0 {
			return true
		}
	}
	return false
}

func (s *State) IsEmpty() bool {
	return len(s.exercises) == 0 && len(s.sets) == 0
}

// ExercisesWithSets lists, in session order, every exercise that has a set
// list. Names that only exist in the set map come last, sorted.
func (s *State) ExercisesWithSets() []string {
	var out []string
	seen := make(map[string]bool, len(s.sets))
	for _, name := range s.exercises {
		if _, ok := s.sets[name]; ok {
			out = append(out, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range s.sets {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (s *State) hasExercise(name string) bool {
	for _, ex := range s.exercises {
		if ex == name {
			return true
		}
	}
	return false
}

func (s *State) newSet(kg, reps, rir int) models.SessionSet {
	return models.SessionSet{
		ID:   s.newID(),
		Kg:   models.ClampSetValue(kg),
		Reps: models.ClampSetValue(reps),
		RIR:  models.ClampSetValue(rir),
	}
}

// ensureStarted starts the workout clock the first time something is added.
func (s *State) ensureStarted(now time.Time) {
	if s.startedAt.IsZero() && !s.IsEmpty() {
		s.startedAt = now
	}
}
