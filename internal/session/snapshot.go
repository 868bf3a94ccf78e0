package session

import (
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// Snapshot is a read-only copy of a Session. It is also the on-disk form of
// the session between CLI invocations.
type Snapshot struct {
	StartedAt       time.Time                      `toml:"started_at"`
	SourceWorkoutID int64                          `toml:"source_workout_id"`
	Exercises       []string                       `toml:"exercises"`
	Sets            map[string][]models.SessionSet `toml:"sets"`
	Notes           map[string]string              `toml:"notes"`
	Selected        map[string][]models.SessionSet `toml:"selected"`
	ActiveTimer     string                         `toml:"active_timer"`
	ActiveSince     time.Time                      `toml:"active_since"`
	FinishedTimers  []string                       `toml:"finished_timers"`
	RestDurations   map[string]string              `toml:"rest_durations"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		StartedAt:       s.state.startedAt,
		SourceWorkoutID: s.state.source,
		Exercises:       s.state.Exercises(),
		Sets:            make(map[string][]models.SessionSet, len(s.state.sets)),
		Notes:           make(map[string]string, len(s.state.notes)),
		Selected:        make(map[string][]models.SessionSet, len(s.coord.selected)),
		ActiveTimer:     s.coord.active,
		ActiveSince:     s.activeSince,
		FinishedTimers:  s.coord.FinishedTimers(),
		RestDurations:   make(map[string]string, len(s.rest)),
	}
	for name, sets := range s.state.sets {
		snap.Sets[name] = append([]models.SessionSet(nil), sets...)
	}
	for name, note := range s.state.notes {
		snap.Notes[name] = note
	}
	for name, sets := range s.coord.selected {
		snap.Selected[name] = append([]models.SessionSet(nil), sets...)
	}
	for id, text := range s.rest {
		snap.RestDurations[id] = text
	}
	return snap
}

// Restore replaces the session with snap. Entries that would break the
// session invariants (done marks for unknown sets, a finished active timer)
// are dropped.
func (s *Session) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()

	s.state.startedAt = snap.StartedAt
	s.state.source = snap.SourceWorkoutID
	for _, name := range snap.Exercises {
		if !s.state.hasExercise(name) {
			s.state.exercises = append(s.state.exercises, name)
		}
	}
	for name, sets := range snap.Sets {
		s.state.sets[name] = append([]models.SessionSet(nil), sets...)
	}
	for name, note := range snap.Notes {
		s.state.notes[name] = note
	}

	for name, sets := range snap.Selected {
		var kept []models.SessionSet
		for _, set := range sets {
			if current, ok := s.state.FindSet(name, set.ID); ok {
				kept = append(kept, current)
			}
		}
		s.coord.putSelected(name, kept)
	}
	for _, id := range snap.FinishedTimers {
		s.coord.finished[id] = struct{}{}
	}
	if snap.ActiveTimer != "" && s.coord.IsSelected(snap.ActiveTimer) && !s.coord.IsFinished(snap.ActiveTimer) {
		s.coord.active = snap.ActiveTimer
		s.activeSince = snap.ActiveSince
	}
	for id, text := range snap.RestDurations {
		s.rest[id] = text
	}
}
