package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/planner/pkg/task"
)

// Sort orders tasks: incomplete before completed regardless of direction,
// then by the selected key. Desc reverses the key ordering as a whole. The
// sort is stable, so ties keep their input order. The input is not modified.
func Sort(tasks []task.Task, by SortOption, dir Direction, locale language.Tag) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)

	cmp := comparator(by, locale)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		c := cmp(a, b)
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

func comparator(by SortOption, locale language.Tag) func(a, b task.Task) int {
	switch by {
	case SortPriority:
		return func(a, b task.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}
	case SortDate:
		return func(a, b task.Task) int {
			return a.Date.Compare(b.Date.Time)
		}
	case SortAlphabetical:
		c := collate.New(locale)
		return func(a, b task.Task) int {
			return c.CompareString(a.Title, b.Title)
		}
	case SortCategory:
		c := collate.New(locale)
		return func(a, b task.Task) int {
			return c.CompareString(a.Category, b.Category)
		}
	}
	return func(task.Task, task.Task) int { return 0 }
}

// Apply derives the ordered list: Filter, then Sort.
func Apply(tasks []task.Task, p Params, now time.Time) []task.Task {
	return Sort(Filter(tasks, p, now), p.Sort, p.Direction, p.Locale)
}
