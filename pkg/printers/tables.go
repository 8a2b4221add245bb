package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/keys"
	"tableflip.dev/planner/pkg/reminder"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

const barWidth = 20

// CategoryTable lists categories with their ids and colors.
func (pp *PrettyPrint) CategoryTable(categories ...task.Category) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("COLOR"))
	for _, c := range categories {
		tbl.AddRow(c.ID, c.Name, c.Color)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Stats prints the headline summary followed by this week's activity and the
// category and priority breakdowns.
func (pp *PrettyPrint) Stats(tasks []task.Task, now time.Time) {
	w := pp.out()
	s := stats.Summarize(tasks)

	pp.Title("Progress")
	_, _ = fmt.Fprintf(w, "%d of %d completed %s %d%%\n\n", s.Completed, s.Total, Bar(s.Rate, 100), s.Rate)

	pp.Title("This week")
	week := stats.Week(tasks, now)
	most := 0
	for _, d := range week {
		most = max(most, d.Total())
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range week {
		tbl.AddRow(d.Date.Format("Mon 01/02"), Bar(d.Completed, most)+color.New(color.Faint).Sprint(strings.Repeat("░", scale(d.Incomplete, most))), fmt.Sprintf("%d/%d", d.Completed, d.Total()))
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w)

	pp.Title("By category")
	pp.counts(renameCategories(stats.ByCategory(tasks), pp.Categories))

	pp.Title("By priority")
	pp.counts(stats.ByPriority(tasks))
}

func renameCategories(counts []stats.Count, categories []task.Category) []stats.Count {
	for i, c := range counts {
		if cat, ok := task.FindCategory(categories, c.Name); ok {
			counts[i].Name = cat.Name
		}
	}
	return counts
}

func (pp *PrettyPrint) counts(counts []stats.Count) {
	most := 0
	for _, c := range counts {
		most = max(most, c.Value)
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range counts {
		tbl.AddRow(c.Name, Bar(c.Value, most), c.Value)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Bar renders value as a share of total in a fixed width.
func Bar(value, total int) string {
	return strings.Repeat("█", scale(value, total))
}

func scale(value, total int) int {
	if total <= 0 || value <= 0 {
		return 0
	}
	n := value * barWidth / total
	return max(n, 1)
}

// Shortcuts prints the keyboard reference.
func (pp *PrettyPrint) Shortcuts() {
	pp.Title("Keyboard shortcuts")
	tbl := uitable.New()
	tbl.Separator = "  "
	k := color.New(color.FgHiCyan)
	for _, b := range keys.Bindings() {
		tbl.AddRow(k.Sprint(b.Keys), b.Description)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Reminders prints tasks coming due relative to now.
func (pp *PrettyPrint) Reminders(now time.Time, reminders ...reminder.Reminder) {
	pp.TitleWithCount("Coming up", len(reminders))
	if len(reminders) == 0 {
		pp.Tasks()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow)
	for _, r := range reminders {
		in := r.DueAt.Sub(now).Round(time.Minute)
		tbl.AddRow(y.Sprint(r.DueAt.Format("15:04")), pp.Translator.Tf(i18n.DueIn, timeutil.FormatWindow(in)), r.Task.Title)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}
