// Package task defines the planner's domain records: tasks and the
// categories they are grouped under.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority ranks a task. The zero value is not a valid priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the valid priorities from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority resolves a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("task: unknown priority %q", s)
}

// Rank orders priorities high=0, medium=1, low=2.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Task is a single to-do item. Pointer fields are optional: nil means the
// field was never set, which is distinct from an empty value.
type Task struct {
	ID               string    `json:"id" validate:"required"`
	Title            string    `json:"title" validate:"required"`
	Description      *string   `json:"description,omitempty"`
	Completed        bool      `json:"completed"`
	Category         string    `json:"category" validate:"required"`
	Priority         Priority  `json:"priority" validate:"oneof=low medium high"`
	Date             Timestamp `json:"date"`
	Time             *string   `json:"time,omitempty" validate:"omitempty,clock"`
	Tags             []string  `json:"tags,omitempty" validate:"omitempty,dive,required"`
	EstimatedMinutes *int      `json:"estimatedMinutes,omitempty" validate:"omitempty,gt=0"`
	Attachment       *string   `json:"attachment,omitempty"`
}

// New builds an incomplete task with a fresh id.
func New(title, category string, priority Priority, date time.Time) Task {
	return Task{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(title),
		Category: category,
		Priority: priority,
		Date:     At(date),
	}
}

// Optional returns a pointer to v, for filling optional fields.
func Optional[T any](v T) *T {
	return &v
}

// Clone returns a deep copy so snapshots never alias the owner's state.
func (t Task) Clone() Task {
	c := t
	c.Description = clonePtr(t.Description)
	c.Time = clonePtr(t.Time)
	c.EstimatedMinutes = clonePtr(t.EstimatedMinutes)
	c.Attachment = clonePtr(t.Attachment)
	if t.Tags != nil {
		c.Tags = append([]string{}, t.Tags...)
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// DueAt combines the task's calendar day with its clock time. It reports
// false when the task has no time or the time is malformed.
func (t Task) DueAt() (time.Time, bool) {
	if t.Time == nil {
		return time.Time{}, false
	}
	h, m, err := ParseClock(*t.Time)
	if err != nil {
		return time.Time{}, false
	}
	return t.Date.Day().Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), true
}

// ParseClock parses a 24h "HH:MM" clock string.
func ParseClock(s string) (int, int, error) {
	c, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("task: parse clock %q: %w", s, err)
	}
	return c.Hour(), c.Minute(), nil
}

// Clone copies a task list.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// IndexOf returns the position of id in tasks, or -1.
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
