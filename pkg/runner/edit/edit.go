// Package edit provides the runner that changes fields of an existing task.
package edit

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

// Edit updates the fields that are set. A pointer to an empty string clears
// an optional field.
type Edit struct {
	ID      string
	Planner *planner.Planner

	Title       *string
	Description *string
	Category    *string
	Priority    *string
	On          *time.Time
	Time        *string
	Tags        *[]string
	Estimate    *string
	Attachment  *string

	Out io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not edit, no planner")
	}

	t, err := n.Planner.Resolve(n.ID)
	if err != nil {
		return err
	}
	if err := n.apply(&t); err != nil {
		return err
	}
	if _, err := n.Planner.UpdateTask(t); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	pp.Detail(t)
	return nil
}

func (n *Edit) apply(t *task.Task) error {
	if n.Title != nil {
		t.Title = *n.Title
	}
	if n.Description != nil {
		t.Description = optional(*n.Description)
	}
	if n.Category != nil {
		id := task.CategoryID(*n.Category)
		if _, ok := n.Planner.Category(id); !ok {
			return fmt.Errorf("unknown category %q", *n.Category)
		}
		t.Category = id
	}
	if n.Priority != nil {
		p, err := task.ParsePriority(*n.Priority)
		if err != nil {
			return err
		}
		t.Priority = p
	}
	if n.On != nil {
		t.Date = task.At(*n.On)
	}
	if n.Time != nil {
		t.Time = optional(*n.Time)
	}
	if n.Tags != nil {
		t.Tags = nil
		for _, tag := range *n.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				t.Tags = append(t.Tags, tag)
			}
		}
	}
	if n.Estimate != nil {
		t.EstimatedMinutes = nil
		if strings.TrimSpace(*n.Estimate) != "" {
			minutes, err := timeutil.ParseEstimate(*n.Estimate)
			if err != nil {
				return err
			}
			t.EstimatedMinutes = task.Optional(minutes)
		}
	}
	if n.Attachment != nil {
		t.Attachment = optional(*n.Attachment)
	}
	return nil
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
