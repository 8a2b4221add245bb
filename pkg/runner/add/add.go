// Package add provides the runner for creating tasks from the command line.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Add creates one task. With Voice set, Title is parsed as a spoken
// command and the other fields are ignored.
type Add struct {
	Planner *planner.Planner

	Title       string
	Description string
	Category    string
	Priority    string
	On          *time.Time
	Time        string
	Tags        []string
	Estimate    string
	Voice       bool
	Tomorrow    bool

	ShowID bool
	Out    io.Writer
}

// Do adds the task and prints the day it landed on.
func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not add, no planner")
	}

	var (
		t   task.Task
		err error
	)
	switch {
	case n.Tomorrow:
		t, err = n.Planner.AddTaskForTomorrow()
	case n.Voice:
		t, err = n.Planner.AddFromVoice(n.Title)
	default:
		t, err = n.build()
		if err == nil {
			t, err = n.Planner.AddTask(t)
		}
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	day := t.Date.Local().Format("Monday, January 2")
	var same []task.Task
	for _, o := range n.Planner.Tasks() {
		if o.Date.SameDay(t.Date.Time) {
			same = append(same, o)
		}
	}
	pp.TitleWithCount(day, len(same))
	pp.Tasks(same...)
	return nil
}

func (n *Add) build() (task.Task, error) {
	categories := n.Planner.Categories()
	category := strings.TrimSpace(n.Category)
	if category == "" {
		category = "work"
		if len(categories) > 0 {
			category = categories[0].ID
		}
	} else if _, ok := task.FindCategory(categories, category); !ok {
		category = task.CategoryID(category)
		if _, ok := task.FindCategory(categories, category); !ok {
			return task.Task{}, fmt.Errorf("unknown category %q", n.Category)
		}
	}

	priority := task.PriorityMedium
	if n.Priority != "" {
		p, err := task.ParsePriority(n.Priority)
		if err != nil {
			return task.Task{}, err
		}
		priority = p
	}

	on := n.Planner.Now()
	if n.On != nil {
		on = *n.On
	}

	t := task.New(n.Title, category, priority, on)
	if d := strings.TrimSpace(n.Description); d != "" {
		t.Description = task.Optional(d)
	}
	if n.Time != "" {
		t.Time = task.Optional(strings.TrimSpace(n.Time))
	}
	for _, tag := range n.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			t.Tags = append(t.Tags, tag)
		}
	}
	if n.Estimate != "" {
		minutes, err := timeutil.ParseEstimate(n.Estimate)
		if err != nil {
			return task.Task{}, err
		}
		t.EstimatedMinutes = task.Optional(minutes)
	}
	return t, nil
}
