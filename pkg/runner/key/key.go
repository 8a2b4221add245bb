// Package key provides CLI helpers to display the task legend and the
// keyboard shortcuts.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/task"
)

// Key prints the task legend followed by the keyboard shortcuts.
type Key struct {
	Out io.Writer
}

// Do renders the legend and shortcuts.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Legend"), bold.Sprint("Meaning"))
	tbl.AddRow("•", "open task")
	tbl.AddRow("×", "completed task")
	for _, p := range task.Priorities() {
		tbl.AddRow(printers.PrioritySignifier(p), fmt.Sprintf("%s priority", p))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	pp := printers.PrettyPrint{Out: out}
	pp.Shortcuts()
	return nil
}
