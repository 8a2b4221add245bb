// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

// Complete toggles the completion state of a task.
type Complete struct {
	ID      string
	Planner *planner.Planner
	Out     io.Writer
}

// Do toggles the task matching ID and prints it.
func (n *Complete) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not complete, no planner")
	}

	t, err := n.Planner.Resolve(n.ID)
	if err != nil {
		return err
	}
	n.Planner.ToggleCompletion(t.ID)
	t, _ = n.Planner.Task(t.ID)

	pp := printers.PrettyPrint{ShowID: true, Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	pp.Tasks(t)
	return nil
}
