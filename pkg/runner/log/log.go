// Package log prints calendar oriented views of the task list.
package log

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/task"
)

const (
	layoutUSDay   = "Monday, January 2"
	layoutUSMonth = "January, 2006"
)

// Log prints the day, week and month views around On.
type Log struct {
	Planner *planner.Planner
	Day     bool
	Week    bool
	Month   bool
	On      time.Time
	ShowID  bool
	Out     io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not log, no planner")
	}
	if n.On.IsZero() {
		n.On = n.Planner.Now()
	}
	all := n.Planner.Tasks()
	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()

	// Calendar view.
	if n.Month {
		pp.Title(n.On.Format(layoutUSMonth))
		pp.Month(n.On, n.Planner.Now(), all...)

		var month []task.Task
		for _, t := range all {
			d := t.Date.Local()
			if d.Year() == n.On.Year() && d.Month() == n.On.Month() {
				month = append(month, t)
			}
		}
		pp.TitleWithCount(n.On.Format(layoutUSMonth), len(month))
		pp.Tasks(month...)
	}

	// Week view.
	if n.Week {
		for _, d := range stats.Week(all, n.On) {
			pp.TitleWithCount(d.Date.Format(layoutUSDay), d.Total())
			pp.Tasks(onDay(all, d.Date)...)
		}
	}

	// Day view.
	if n.Day {
		day := onDay(all, n.On)
		pp.TitleWithCount(n.On.Format(layoutUSDay), len(day))
		pp.Tasks(day...)
	}

	return nil
}

func onDay(tasks []task.Task, day time.Time) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if t.Date.SameDay(day) {
			out = append(out, t)
		}
	}
	return out
}
