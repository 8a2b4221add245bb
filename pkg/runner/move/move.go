// Package move provides the runner that reorders tasks in the manual order.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

// Move places ID at Target's position, or one step Up/Down within the
// displayed list for the task's day.
type Move struct {
	ID        string
	Target    string
	Direction string
	Planner   *planner.Planner
	Out       io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not move, no planner")
	}

	moved, err := n.Planner.Resolve(n.ID)
	if err != nil {
		return err
	}
	n.Planner.SetSelectedDate(moved.Date.Time)

	switch {
	case n.Target != "":
		target, err := n.Planner.Resolve(n.Target)
		if err != nil {
			return err
		}
		n.Planner.Reorder(moved.ID, target.ID)
	default:
		var delta int
		switch strings.ToLower(strings.TrimSpace(n.Direction)) {
		case "up":
			delta = -1
		case "down":
			delta = 1
		default:
			return fmt.Errorf("unknown direction %q (expected up or down)", n.Direction)
		}
		n.Planner.Select(moved.ID)
		n.Planner.MoveSelected(delta)
	}

	pp := printers.PrettyPrint{ShowID: true, Categories: n.Planner.Categories(), Out: n.Out}
	tasks := n.Planner.Ordered()
	pp.NewLine()
	pp.TitleWithCount(moved.Date.Local().Format("Monday, January 2"), len(tasks))
	pp.Tasks(tasks...)
	return nil
}
