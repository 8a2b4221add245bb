package query

import (
	"strings"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// Filter returns the tasks visible under p, preserving raw order. now is the
// reference instant for the today and upcoming filters.
func Filter(tasks []task.Task, p Params, now time.Time) []task.Task {
	needle := strings.ToLower(p.Search)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesCategory(t, p.ActiveCategory) &&
			matchesDate(t, p, now) &&
			(p.ShowCompleted || !t.Completed) &&
			matchesSearch(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

func matchesCategory(t task.Task, active string) bool {
	return active == "" || active == task.AllCategories || t.Category == active
}

func matchesDate(t task.Task, p Params, now time.Time) bool {
	switch p.Filter {
	case FilterToday:
		return t.Date.SameDay(now)
	case FilterUpcoming:
		return t.Date.After(now)
	case FilterCompleted:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	default:
		return t.Date.SameDay(p.SelectedDate)
	}
}

// matchesSearch expects needle to be lower-cased already.
func matchesSearch(t task.Task, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
