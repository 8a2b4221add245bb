package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
)

// Toast prints a planner acknowledgment as a single status line.
func (pp *PrettyPrint) Toast(t planner.Toast) {
	var c *color.Color
	mark := "•"
	switch t.Variant {
	case planner.VariantSuccess:
		c, mark = color.New(color.FgHiGreen), "✓"
	case planner.VariantDestructive:
		c, mark = color.New(color.FgHiRed), "✗"
	default:
		c = color.New(color.FgHiBlue)
	}
	_, _ = c.Fprintf(pp.out(), "%s %s", mark, t.Title)
	if t.Description != "" {
		_, _ = color.New(color.Faint).Fprintf(pp.out(), "  %s", t.Description)
	}
	_, _ = fmt.Fprintln(pp.out())
}

// Notifier routes planner toasts to pp.
func (pp *PrettyPrint) Notifier() planner.Notifier {
	return planner.NotifierFunc(pp.Toast)
}
