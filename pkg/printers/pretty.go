package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

const (
	bulletOpen = "•"
	bulletDone = "×"
)

type PrettyPrint struct {
	ShowID     bool
	Categories []task.Category
	// Out defaults to color.Output.
	Out io.Writer
	// Translator renders reminder phrases; nil prints English.
	Translator *i18n.Translator
}

var (
	spacing = strings.Repeat(" ", len("3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints one line per task in the given order.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	w := pp.out()
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	for _, t := range tasks {
		if pp.ShowID {
			_, _ = y.Fprint(w, t.ID)
			_, _ = y.Fprint(w, strings.Repeat(" ", max(1, len(spacing)-len(t.ID))))
		}
		bullet, title := bulletOpen, color.New().Sprint(t.Title)
		if t.Completed {
			bullet, title = bulletDone, done.Sprint(t.Title)
		}
		_, _ = fmt.Fprintf(w, "%s %s %s", PrioritySignifier(t.Priority), bullet, title)
		if meta := pp.meta(t); meta != "" {
			_, _ = faint.Fprintf(w, "  %s", meta)
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)
}

// PrioritySignifier marks high priority tasks the way a bullet journal
// marks priority entries.
func PrioritySignifier(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return color.New(color.FgHiRed, color.Bold).Sprint("!")
	case task.PriorityLow:
		return color.New(color.Faint).Sprint("-")
	default:
		return " "
	}
}

func (pp *PrettyPrint) meta(t task.Task) string {
	var parts []string
	name := t.Category
	if c, ok := task.FindCategory(pp.Categories, t.Category); ok {
		name = c.Name
	}
	parts = append(parts, name)
	if t.Time != nil {
		parts = append(parts, *t.Time)
	}
	if t.EstimatedMinutes != nil {
		parts = append(parts, "~"+timeutil.FormatEstimate(*t.EstimatedMinutes))
	}
	for _, tag := range t.Tags {
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

// Detail prints every field of one task.
func (pp *PrettyPrint) Detail(t task.Task) {
	w := pp.out()
	b := color.New(color.Bold)
	row := func(label, value string) {
		if value == "" {
			return
		}
		_, _ = b.Fprintf(w, "%-12s", label)
		_, _ = fmt.Fprintln(w, value)
	}

	category := t.Category
	if c, ok := task.FindCategory(pp.Categories, t.Category); ok {
		category = c.Name
	}
	status := "open"
	if t.Completed {
		status = "completed"
	}
	row("ID", t.ID)
	row("Title", t.Title)
	if t.Description != nil {
		row("Description", *t.Description)
	}
	row("Status", status)
	row("Category", category)
	row("Priority", string(t.Priority))
	row("Date", t.Date.Local().Format("Mon Jan 2, 2006"))
	if t.Time != nil {
		row("Time", *t.Time)
	}
	if len(t.Tags) > 0 {
		row("Tags", strings.Join(t.Tags, ", "))
	}
	if t.EstimatedMinutes != nil {
		row("Estimate", timeutil.FormatEstimate(*t.EstimatedMinutes))
	}
	if t.Attachment != nil {
		row("Attachment", *t.Attachment)
	}
	_, _ = fmt.Fprintln(w)
}
