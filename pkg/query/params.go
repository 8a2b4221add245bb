// Package query derives the ordered task list shown to the user from the raw
// task collection and the current view parameters. Everything here is pure:
// the same inputs always produce the same output.
package query

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/planner/pkg/task"
)

// FilterOption selects the date or completion constraint.
type FilterOption string

const (
	FilterAll        FilterOption = "all"
	FilterToday      FilterOption = "today"
	FilterUpcoming   FilterOption = "upcoming"
	FilterCompleted  FilterOption = "completed"
	FilterIncomplete FilterOption = "incomplete"
)

// FilterOptions lists the filters in menu order.
func FilterOptions() []FilterOption {
	return []FilterOption{FilterAll, FilterToday, FilterUpcoming, FilterCompleted, FilterIncomplete}
}

// SortOption selects the secondary sort key.
type SortOption string

const (
	SortPriority     SortOption = "priority"
	SortDate         SortOption = "date"
	SortAlphabetical SortOption = "alphabetical"
	SortCategory     SortOption = "category"
)

// SortOptions lists the sort keys in menu order.
func SortOptions() []SortOption {
	return []SortOption{SortPriority, SortDate, SortAlphabetical, SortCategory}
}

// Direction orders the secondary sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// Params are the transient view settings.
type Params struct {
	// ActiveCategory is task.AllCategories or a category id.
	ActiveCategory string
	// SelectedDate only applies when Filter is FilterAll.
	SelectedDate  time.Time
	Filter        FilterOption
	ShowCompleted bool
	Search        string
	Sort          SortOption
	Direction     Direction
	// Locale drives title and category collation.
	Locale language.Tag
}

// DefaultParams returns the settings a fresh session starts with.
func DefaultParams(now time.Time) Params {
	return Params{
		ActiveCategory: task.AllCategories,
		SelectedDate:   now,
		Filter:         FilterAll,
		ShowCompleted:  true,
		Sort:           SortPriority,
		Direction:      Asc,
		Locale:         language.English,
	}
}

func ParseFilter(s string) (FilterOption, error) {
	f := FilterOption(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range FilterOptions() {
		if o == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("query: unknown filter %q", s)
}

func ParseSort(s string) (SortOption, error) {
	o := SortOption(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range SortOptions() {
		if v == o {
			return o, nil
		}
	}
	return "", fmt.Errorf("query: unknown sort %q", s)
}

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Asc, Desc:
		return d, nil
	}
	return "", fmt.Errorf("query: unknown direction %q", s)
}
