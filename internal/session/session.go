// Package session holds the in-progress workout: its exercises and sets,
// which sets are done, and which set owns the rest timer.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/pubsub"
	"github.com/misterclayt0n/liftlog/internal/timer"
)

// HistorySource answers one-shot "previous stats" lookups.
type HistorySource interface {
	ExerciseHistory(ctx context.Context, name string) ([]models.Set, error)
}

// HistoryFeed pushes full "previous stats" snapshots whenever the store changes.
type HistoryFeed interface {
	SubscribeExerciseHistory(ctx context.Context, name string) <-chan []models.Set
}

// Session ties State and Coordinator together. Every exported method is
// one critical section, so a toggle and its timer hand-off never interleave
// with another command.
type Session struct {
	mu          sync.Mutex
	state       *State
	coord       *Coordinator
	rest        map[string]string
	defaultRest string
	activeSince time.Time
	previous    map[string][]models.Set
	broker      *pubsub.Broker[Snapshot]
	now         func() time.Time
	log         *slog.Logger
}

type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator replaces the uuid generator used for new set ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.state.newID = newID }
}

// WithDefaultRest sets the rest entry used for sets that have none.
func WithDefaultRest(text string) Option {
	return func(s *Session) { s.defaultRest = timer.NormalizeText(text) }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

func New(opts ...Option) *Session {
	s := &Session{
		state:       NewState(func() string { return uuid.New().String() }),
		coord:       NewCoordinator(),
		rest:        make(map[string]string),
		defaultRest: timer.DefaultText,
		previous:    make(map[string][]models.Set),
		broker:      pubsub.NewBroker[Snapshot](),
		now:         time.Now,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartWorkout replaces whatever was being recorded.
func (s *Session) StartWorkout(names []string, setsPerExercise [][]models.SessionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.state.StartWorkout(names, setsPerExercise, s.now())
	s.publish(pubsub.CreatedEvent)
}

// StartFrom redoes a persisted workout: same exercises, same values, new ids.
func (s *Session) StartFrom(w models.Workout) {
	names := make([]string, 0, len(w.Exercises))
	sets := make([][]models.SessionSet, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		names = append(names, ex.Name)
		list := make([]models.SessionSet, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			list = append(list, models.SessionSet{Kg: set.Kg, Reps: set.Reps, RIR: set.RIR})
		}
		sets = append(sets, list)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.state.StartWorkout(names, sets, s.now())
	s.state.SetSource(w.ID)
	s.publish(pubsub.CreatedEvent)
}

func (s *Session) AddExercise(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.AddExercise(name) {
		return false
	}
	s.state.ensureStarted(s.now())
	s.publish(pubsub.UpdatedEvent)
	return true
}

// InitializeExercise seeds an exercise from its previous stats the first
// time it is shown. Calling it again for an exercise that already has sets
// does nothing and does not hit src.
func (s *Session) InitializeExercise(ctx context.Context, name string, src HistorySource) error {
	s.mu.Lock()
	_, seeded := s.state.sets[name]
	s.mu.Unlock()
	if seeded {
		return nil
	}

	var history []models.Set
	if src != nil {
		var err error
		history, err = src.ExerciseHistory(ctx, name)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.previous[name] = history
	if s.state.InitializeExercise(name, history) {
		s.state.ensureStarted(s.now())
		s.log.Debug("exercise initialized", "exercise", name, "sets", len(s.state.Sets(name)))
		s.publish(pubsub.UpdatedEvent)
	}
	return nil
}

func (s *Session) UpdateSet(name string, index, kg, reps, rir int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.state.UpdateSet(name, index, kg, reps, rir)
	if !ok {
		return false
	}
	s.coord.Refresh(name, set)
	s.publish(pubsub.UpdatedEvent)
	return true
}

func (s *Session) AddSet(name string) (models.SessionSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.state.AddSet(name)
	if ok {
		s.publish(pubsub.UpdatedEvent)
	}
	return set, ok
}

// RemoveExercise takes an exercise out of the session together with its
// sets, note and done marks. A rest timer owned by one of its sets stops.
func (s *Session) RemoveExercise(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.state.RemoveExercise(name)
	before := s.coord.ActiveTimer()
	s.coord.DropExercise(name, ids)
	s.syncActiveSince(before)
	s.forgetRest(ids)
	s.publish(pubsub.UpdatedEvent)
}

// DeleteExercise is RemoveExercise that also forgets the exercise's
// previous stats.
func (s *Session) DeleteExercise(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.state.RemoveExercise(name)
	before := s.coord.ActiveTimer()
	s.coord.DropExercise(name, ids)
	s.syncActiveSince(before)
	s.forgetRest(ids)
	delete(s.previous, name)
	s.publish(pubsub.DeletedEvent)
}

// SwapExercise replaces the exercise at index with newName, seeded from
// newName's previous stats.
func (s *Session) SwapExercise(ctx context.Context, index int, newName string, src HistorySource) (string, error) {
	var history []models.Set
	if src != nil {
		var err error
		history, err = src.ExerciseHistory(ctx, newName)
		if err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	old, ids, ok := s.state.ReplaceExercise(index, newName)
	if !ok {
		return "", nil
	}
	before := s.coord.ActiveTimer()
	s.coord.DropExercise(old, ids)
	s.syncActiveSince(before)
	s.forgetRest(ids)
	delete(s.previous, old)
	s.previous[newName] = history
	s.state.InitializeExercise(newName, history)
	s.publish(pubsub.UpdatedEvent)
	return old, nil
}

func (s *Session) SetNote(name, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.SetNote(name, text) {
		return false
	}
	s.publish(pubsub.UpdatedEvent)
	return true
}

// ToggleSelection marks a set done or not done and runs the timer hand-off.
// Sets that are not part of the session are ignored.
func (s *Session) ToggleSelection(name, setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.state.FindSet(name, setID)
	if !ok {
		return false
	}
	before := s.coord.ActiveTimer()
	s.coord.Toggle(name, set)
	s.syncActiveSince(before)
	s.log.Debug("set toggled", "exercise", name, "set", setID,
		"selected", s.coord.IsSelected(setID), "active", s.coord.ActiveTimer())
	s.publish(pubsub.UpdatedEvent)
	return true
}

// ExpireTimer is called when the countdown of setID reaches zero.
func (s *Session) ExpireTimer(setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.coord.Expire(setID) {
		return false
	}
	s.activeSince = time.Time{}
	s.publish(pubsub.UpdatedEvent)
	return true
}

// SetRestDuration stores the rest entry of a set. It is only accepted while
// the set is not done yet, since its countdown would already be running.
func (s *Session) SetRestDuration(setID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coord.IsSelected(setID) {
		return false
	}
	s.rest[setID] = timer.NormalizeText(text)
	return true
}

func (s *Session) RestText(setID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text, ok := s.rest[setID]; ok {
		return text
	}
	return s.defaultRest
}

func (s *Session) RestDuration(setID string) time.Duration {
	return timer.ParseDuration(s.RestText(setID))
}

// ActiveTimer returns the set owning the rest timer and when it started.
func (s *Session) ActiveTimer() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.ActiveTimer(), s.activeSince
}

func (s *Session) IsFinishedTimer(setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.IsFinished(setID)
}

func (s *Session) IsSelected(setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.IsSelected(setID)
}

// IsFullyDone reports whether every set of every exercise is marked done.
func (s *Session) IsFullyDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.IsFullyDone(s.state.sets)
}

func (s *Session) Exercises() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Exercises()
}

func (s *Session) Sets(name string) []models.SessionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Sets(name)
}

func (s *Session) Note(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Note(name)
}

func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Elapsed(s.now())
}

func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsEmpty()
}

// Source returns the persisted workout the session was started from, or 0.
func (s *Session) Source() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Source()
}

// PreviousStats returns the last known previous stats of an exercise.
func (s *Session) PreviousStats(name string) []models.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previous[name]
}

// TrackHistory keeps PreviousStats(name) current from feed until ctx is done
// or the feed closes. Each push replaces the previous value.
func (s *Session) TrackHistory(ctx context.Context, feed HistoryFeed, name string) {
	updates := feed.SubscribeExerciseHistory(ctx, name)
	go func() {
		for sets := range updates {
			s.mu.Lock()
			s.previous[name] = sets
			s.mu.Unlock()
		}
	}()
}

// WorkoutDeleted clears the session when it was started from workout id.
func (s *Session) WorkoutDeleted(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 || s.state.Source() != id {
		return false
	}
	s.reset()
	s.publish(pubsub.DeletedEvent)
	return true
}

// Clear discards the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.publish(pubsub.DeletedEvent)
}

// Subscribe delivers a Snapshot after every change until ctx is done.
func (s *Session) Subscribe(ctx context.Context) <-chan pubsub.Event[Snapshot] {
	return s.broker.Subscribe(ctx)
}

// Close releases subscribers.
func (s *Session) Close() {
	s.broker.Close()
}

func (s *Session) reset() {
	s.state.Clear()
	s.coord.Reset()
	s.rest = make(map[string]string)
	s.previous = make(map[string][]models.Set)
	s.activeSince = time.Time{}
}

// syncActiveSince restarts the timer clock whenever ownership changed.
func (s *Session) syncActiveSince(before string) {
	after := s.coord.ActiveTimer()
	switch {
	case after == "":
		s.activeSince = time.Time{}
	case after != before:
		s.activeSince = s.now()
	}
}

func (s *Session) forgetRest(ids []string) {
	for _, id := range ids {
		delete(s.rest, id)
	}
}

func (s *Session) publish(kind pubsub.EventType) {
	if s.broker.SubscriberCount() == 0 {
		return
	}
	s.broker.Publish(kind, s.snapshot())
}
