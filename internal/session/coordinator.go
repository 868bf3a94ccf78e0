package session

import (
	"sort"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// Coordinator tracks which sets are done and arbitrates the one rest timer
// shared by the whole workout.
//
// A set id is never both the active timer and a finished timer.
type Coordinator struct {
	selected map[string][]models.SessionSet
	active   string
	finished map[string]struct{}
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		selected: make(map[string][]models.SessionSet),
		finished: make(map[string]struct{}),
	}
}

// Toggle flips the done state of set within exercise name and then hands
// the rest timer off.
func (c *Coordinator) Toggle(name string, set models.SessionSet) {
	current := c.selected[name]
	updated := make([]models.SessionSet, 0, len(current)+1)
	found := false
	for _, s := range current {
		if s.ID == set.ID {
			found = true
			continue
		}
		updated = append(updated, s)
	}
	if !found {
		updated = append(updated, set)
	}
	c.putSelected(name, updated)

	c.handOff(set.ID, name)
}

// handOff applies the timer rules in order:
//  1. toggling a finished timer acknowledges it and un-marks the set;
//  2. deselecting the active set stops its timer;
//  3. another active timer is superseded: it becomes finished if its set is
//     still done, and the toggled set takes over when it is done;
//  4. otherwise the toggled set owns the timer when it is done.
func (c *Coordinator) handOff(setID, name string) {
	isSelected := c.IsSelected(setID)

	switch {
	case c.IsFinished(setID):
		delete(c.finished, setID)
		c.unselect(name, setID)
		if c.active == setID {
			c.active = ""
		}

	case c.active == setID && !isSelected:
		c.active = ""

	case c.active != "" && c.active != setID:
		if c.IsSelected(c.active) {
			c.finished[c.active] = struct{}{}
		}
		c.active = ""
		if isSelected {
			c.active = setID
		}

	default:
		c.active = ""
		if isSelected {
			c.active = setID
		}
	}
}

// Expire records that the active countdown reached zero. It returns false
// when id no longer owns the timer, in which case nothing changes.
func (c *Coordinator) Expire(id string) bool {
	if id == "" || c.active != id {
		return false
	}
	c.active = ""
	c.finished[id] = struct{}{}
	return true
}

// DropExercise forgets the selection of an exercise and stops the active
// timer when it belongs to one of setIDs. Finished timers are left alone:
// set ids are never reused, so a stale entry is inert.
func (c *Coordinator) DropExercise(name string, setIDs []string) {
	delete(c.selected, name)
	for _, id := range setIDs {
		if c.active == id {
			c.active = ""
		}
	}
}

// Refresh updates the stored values of a selected set after an edit.
func (c *Coordinator) Refresh(name string, set models.SessionSet) {
	current := c.selected[name]
	for i, s := range current {
		if s.ID != set.ID {
			continue
		}
		updated := make([]models.SessionSet, len(current))
		copy(updated, current)
		updated[i] = set
		c.selected[name] = updated
		return
	}
}

// IsFullyDone reports whether every set in sets is selected.
func (c *Coordinator) IsFullyDone(sets map[string][]models.SessionSet) bool {
	for name, list := range sets {
		done := make(map[string]bool, len(c.selected[name]))
		for _, s := range c.selected[name] {
			done[s.ID] = true
		}
		for _, s := range list {
			if !done[s.ID] {
				return false
			}
		}
	}
	return true
}

func (c *Coordinator) IsSelected(id string) bool {
	for _, list := range c.selected {
		for _, s := range list {
			if s.ID == id {
				return true
			}
		}
	}
	return false
}

func (c *Coordinator) IsFinished(id string) bool {
	_, ok := c.finished[id]
	return ok
}

func (c *Coordinator) Selected(name string) []models.SessionSet {
	return c.selected[name]
}

// SelectedExercises returns the names with at least one done set, sorted.
func (c *Coordinator) SelectedExercises() []string {
	names := make([]string, 0, len(c.selected))
	for name := range c.selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Coordinator) ActiveTimer() string {
	return c.active
}

func (c *Coordinator) FinishedTimers() []string {
	ids := make([]string, 0, len(c.finished))
	for id := range c.finished {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Coordinator) Reset() {
	c.selected = make(map[string][]models.SessionSet)
	c.active = ""
	c.finished = make(map[string]struct{})
}

func (c *Coordinator) unselect(name, id string) {
	current := c.selected[name]
	kept := make([]models.SessionSet, 0, len(current))
	for _, s := range current {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.putSelected(name, kept)
}

// putSelected stores list under name, dropping the key when list is empty.
func (c *Coordinator) putSelected(name string, list []models.SessionSet) {
	if len(list) == 0 {
		delete(c.selected, name)
		return
	}
	c.selected[name] = list
}
