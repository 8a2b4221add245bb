// Package reminder finds tasks that are about to come due.
package reminder

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// DefaultWindow is how far ahead Due looks when no window is given.
const DefaultWindow = 5 * time.Minute

// Reminder pairs a task with the instant it is due.
type Reminder struct {
	Task  task.Task
	DueAt time.Time
}

// Due returns the incomplete tasks with a clock time whose due instant lies
// in (now, now+window], earliest first. A non-positive window uses
// DefaultWindow.
func Due(tasks []task.Task, now time.Time, window time.Duration) []Reminder {
	if window <= 0 {
		window = DefaultWindow
	}
	until := now.Add(window)

	var out []Reminder
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		at, ok := t.DueAt()
		if !ok {
			continue
		}
		if at.After(now) && !at.After(until) {
			out = append(out, Reminder{Task: t.Clone(), DueAt: at})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueAt.Before(out[j].DueAt)
	})
	return out
}

// Tracker remembers which reminders were already delivered so a periodic
// check reports each task once per due instant.
type Tracker struct {
	seen map[string]time.Time
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]time.Time)}
}

// Fresh filters out reminders already returned by an earlier call.
func (tr *Tracker) Fresh(reminders []Reminder) []Reminder {
	var out []Reminder
	for _, r := range reminders {
		if at, ok := tr.seen[r.Task.ID]; ok && at.Equal(r.DueAt) {
			continue
		}
		tr.seen[r.Task.ID] = r.DueAt
		out = append(out, r)
	}
	return out
}
