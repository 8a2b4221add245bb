// Package report prints progress statistics.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/task"
)

// Report prints statistics. A non-zero Since limits it to tasks dated
// between Since and now.
type Report struct {
	Planner *planner.Planner
	Since   time.Time
	JSON    bool
	Out     io.Writer
}

type summary struct {
	Total      int           `json:"total"`
	Completed  int           `json:"completed"`
	Rate       int           `json:"rate"`
	Categories []stats.Count `json:"categories"`
	Priorities []stats.Count `json:"priorities"`
}

func (n *Report) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not report, no planner")
	}
	tasks := n.Planner.Tasks()
	if !n.Since.IsZero() {
		now := n.Planner.Now()
		var within []task.Task
		for _, t := range tasks {
			if !t.Date.Before(n.Since) && !t.Date.After(now) {
				within = append(within, t)
			}
		}
		tasks = within
	}

	if n.JSON {
		s := stats.Summarize(tasks)
		b, err := json.MarshalIndent(summary{
			Total:      s.Total,
			Completed:  s.Completed,
			Rate:       s.Rate,
			Categories: stats.ByCategory(tasks),
			Priorities: stats.ByPriority(tasks),
		}, "", "  ")
		if err != nil {
			return err
		}
		out := n.Out
		if out == nil {
			out = color.Output
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	pp.Stats(tasks, n.Planner.Now())
	return nil
}
