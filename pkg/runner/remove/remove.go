// Package remove provides the runner that deletes tasks.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

// Remove deletes a task by id or unique id prefix.
type Remove struct {
	ID      string
	Planner *planner.Planner
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not remove, no planner")
	}

	t, err := n.Planner.Resolve(n.ID)
	if err != nil {
		return err
	}
	n.Planner.DeleteTask(t.ID)
	n.Planner.SetSelectedDate(t.Date.Time)

	pp := printers.PrettyPrint{ShowID: true, Categories: n.Planner.Categories(), Out: n.Out}
	left := n.Planner.Ordered()
	pp.NewLine()
	pp.TitleWithCount(t.Date.Local().Format("Monday, January 2"), len(left))
	pp.Tasks(left...)
	return nil
}
