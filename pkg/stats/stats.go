// Package stats summarizes task progress.
package stats

import (
	"math"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// Summary is the headline progress figure.
type Summary struct {
	Total     int
	Completed int
	// Rate is the completed share as a whole percent, rounded half up.
	Rate int
}

func Summarize(tasks []task.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Rate = int(math.Floor(float64(s.Completed)*100/float64(s.Total) + 0.5))
	}
	return s
}

// Day counts the tasks dated on one calendar day.
type Day struct {
	Date       time.Time
	Completed  int
	Incomplete int
}

func (d Day) Total() int {
	return d.Completed + d.Incomplete
}

// WeekStart returns local midnight of the Monday on or before now.
func WeekStart(now time.Time) time.Time {
	local := now.Local()
	offset := (int(local.Weekday()) + 6) % 7
	return time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, time.Local)
}

// Week buckets tasks into the seven days Monday through Sunday of the week
// containing now. Tasks outside that week are ignored.
func Week(tasks []task.Task, now time.Time) [7]Day {
	var week [7]Day
	start := WeekStart(now)
	for i := range week {
		week[i].Date = start.AddDate(0, 0, i)
	}
	for _, t := range tasks {
		for i := range week {
			if !t.Date.SameDay(week[i].Date) {
				continue
			}
			if t.Completed {
				week[i].Completed++
			} else {
				week[i].Incomplete++
			}
			break
		}
	}
	return week
}

// Count is a labelled tally.
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ByCategory counts tasks per category id in order of first appearance.
func ByCategory(tasks []task.Task) []Count {
	var out []Count
	index := map[string]int{}
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, Count{Name: t.Category})
		}
		out[i].Value++
	}
	return out
}

// ByPriority counts tasks for each priority, high first. Every priority is
// present even when its count is zero.
func ByPriority(tasks []task.Task) []Count {
	out := make([]Count, 0, 3)
	for _, p := range task.Priorities() {
		c := Count{Name: string(p)}
		for _, t := range tasks {
			if t.Priority == p {
				c.Value++
			}
		}
		out = append(out, c)
	}
	return out
}
