package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/query"
)

// ViewOptions map to the query parameters of the task list.
type ViewOptions struct {
	Category     string
	Filter       string
	Search       string
	Sort         string
	Direction    string
	HideComplete bool
	Everything   bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show tasks in this category.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"One of "+join(query.FilterOptions())+".")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Match text in the title, description or tags.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"One of "+join(query.SortOptions())+".")
	cmd.Flags().StringVar(&o.Direction, "direction", "",
		"Sort direction: asc or desc.")
	cmd.Flags().BoolVar(&o.HideComplete, "hide-completed", false,
		"Hide completed tasks.")
	cmd.Flags().BoolVarP(&o.Everything, "all", "a", false,
		"Show tasks on every day, grouped by day.")
}

func join[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
