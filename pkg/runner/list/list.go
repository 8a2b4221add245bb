// Package list provides the runner that prints the filtered and sorted
// task list.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/task"
)

const layoutDay = "Monday, January 2"

// List prints tasks matching the view parameters. Empty fields keep the
// planner's defaults.
type List struct {
	Planner *planner.Planner

	Category     string
	Filter       string
	Search       string
	Sort         string
	Direction    string
	On           *time.Time
	HideComplete bool
	// Everything ignores the date and groups every task by day.
	Everything bool

	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Do applies the parameters and prints the result.
func (n *List) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not list, no planner")
	}
	if err := n.apply(); err != nil {
		return err
	}

	if n.Everything {
		return n.everything()
	}

	tasks := n.Planner.Ordered()
	if n.JSON {
		return n.json(tasks)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(n.title(), len(tasks))
	pp.Tasks(tasks...)
	return nil
}

func (n *List) apply() error {
	p := n.Planner
	if n.Category != "" {
		p.SetActiveCategory(n.Category)
	}
	if n.Filter != "" {
		f, err := query.ParseFilter(n.Filter)
		if err != nil {
			return err
		}
		p.SetFilter(f)
	}
	if n.On != nil {
		p.SetSelectedDate(*n.On)
	}
	if n.HideComplete {
		p.SetShowCompleted(false)
	}
	p.SetSearch(n.Search)

	params := p.Params()
	by, dir := params.Sort, params.Direction
	if n.Sort != "" {
		s, err := query.ParseSort(n.Sort)
		if err != nil {
			return err
		}
		by = s
	}
	if n.Direction != "" {
		d, err := query.ParseDirection(n.Direction)
		if err != nil {
			return err
		}
		dir = d
	}
	p.SetSort(by, dir)
	return nil
}

func (n *List) title() string {
	params := n.Planner.Params()
	switch params.Filter {
	case query.FilterAll:
		return params.SelectedDate.Format(layoutDay)
	default:
		return cases.Title(params.Locale).String(string(params.Filter))
	}
}

func (n *List) everything() error {
	params := n.Planner.Params()
	tasks := query.Sort(filterEverything(n.Planner.Tasks(), params), params.Sort, params.Direction, params.Locale)
	if n.JSON {
		return n.json(tasks)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Categories: n.Planner.Categories(), Out: n.Out}
	pp.NewLine()
	if len(tasks) == 0 {
		pp.TitleWithCount("All tasks", 0)
		pp.Tasks()
		return nil
	}
	for _, day := range byDay(tasks) {
		pp.TitleWithCount(day[0].Date.Local().Format(layoutDay), len(day))
		pp.Tasks(day...)
	}
	return nil
}

// filterEverything applies every constraint except the date.
func filterEverything(tasks []task.Task, params query.Params) []task.Task {
	params.Filter = query.FilterAll
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		params.SelectedDate = t.Date.Time
		if len(query.Filter([]task.Task{t}, params, t.Date.Time)) == 1 {
			out = append(out, t)
		}
	}
	return out
}

// byDay groups tasks by calendar day, earliest day first. Order within a day
// is preserved.
func byDay(tasks []task.Task) [][]task.Task {
	index := map[time.Time]int{}
	var groups [][]task.Task
	for _, t := range tasks {
		d := t.Date.Day()
		i, ok := index[d]
		if !ok {
			i = len(groups)
			index[d] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], t)
	}
	slices.SortStableFunc(groups, func(a, b []task.Task) int {
		return a[0].Date.Day().Compare(b[0].Date.Day())
	})
	return groups
}

func (n *List) json(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
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
