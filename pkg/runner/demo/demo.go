// Package demo seeds the planner with a sample week of tasks.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

// StaticDemo returns sample tasks spread across the days around now.
func StaticDemo(now time.Time) []task.Task {
	mk := func(title, category string, p task.Priority, days int, clock string, tags ...string) task.Task {
		t := task.New(title, category, p, now.AddDate(0, 0, days))
		if clock != "" {
			t.Time = task.Optional(clock)
		}
		t.Tags = tags
		return t
	}

	e := []task.Task{
		mk("Review quarterly goals", "work", task.PriorityHigh, 0, "09:30", "planning"),
		mk("Reply to design feedback", "work", task.PriorityMedium, 0, "11:00"),
		mk("Morning run", "health", task.PriorityMedium, 0, "07:00"),
		mk("Pick up groceries", "errands", task.PriorityLow, 0, "", "shopping"),
		mk("Read a chapter", "learning", task.PriorityLow, 0, "21:00", "books"),
		mk("Call the dentist", "personal", task.PriorityHigh, 1, "10:00"),
		mk("Prepare sprint demo", "work", task.PriorityHigh, 1, "15:00", "demo"),
		mk("Yoga class", "health", task.PriorityMedium, 2, "18:30"),
		mk("Renew library card", "errands", task.PriorityLow, 3, ""),
		mk("Finish course module", "learning", task.PriorityMedium, -1, "", "course"),
		mk("Plan weekend trip", "personal", task.PriorityLow, -2, ""),
	}

	e[0].Description = task.Optional("Compare progress against the plan and adjust targets.")
	e[0].EstimatedMinutes = task.Optional(45)
	e[6].EstimatedMinutes = task.Optional(90)
	e[9].Completed = true
	e[10].Completed = true

	return e
}

// Demo adds the sample tasks.
type Demo struct {
	Planner *planner.Planner
	Out     io.Writer
}

func (d *Demo) Do(ctx context.Context) error {
	if d.Planner == nil {
		return errors.New("can not seed, no planner")
	}
	out := d.Out
	if out == nil {
		out = color.Output
	}
	tasks := StaticDemo(d.Planner.Now())
	for _, t := range tasks {
		if _, err := d.Planner.AddTask(t); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(out, "Added %d sample tasks\n", len(tasks))
	return nil
}
