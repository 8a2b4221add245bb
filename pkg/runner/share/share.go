// Package share prints a task as pasteable text and a share link.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

type Share struct {
	ID      string
	Link    bool
	Planner *planner.Planner
	Out     io.Writer
}

func (n *Share) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not share, no planner")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	t, err := n.Planner.Resolve(n.ID)
	if err != nil {
		return err
	}
	var category *task.Category
	if c, ok := n.Planner.Category(t.Category); ok {
		category = &c
	}

	_, _ = fmt.Fprintln(out, task.ShareText(t, category))
	if n.Link {
		link, err := task.ShareLink(t, category)
		if err != nil {
			return err
		}
		_, _ = color.New(color.FgHiBlue, color.Underline).Fprintln(out, link)
	}
	return nil
}
