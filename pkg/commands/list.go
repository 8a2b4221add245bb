package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks",
		Long: options.Wrap80(`List the tasks for a day, filtered and sorted the same way the
interactive view does. Tasks are always grouped by priority first, then by the
chosen sort.`),
		Example: `
planner list
planner list --on tomorrow
planner list --filter upcoming --sort date
planner list --all --search report --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			on, err := oo.GetOn(s.Planner.Now())
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Planner:      s.Planner,
				Category:     vo.Category,
				Filter:       vo.Filter,
				Search:       vo.Search,
				Sort:         vo.Sort,
				Direction:    vo.Direction,
				On:           on,
				HideComplete: vo.HideComplete,
				Everything:   vo.Everything,
				ShowID:       io.ShowID,
				JSON:         output.JSON,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("filter", enumCompletions(query.FilterOptions()))
	_ = cmd.RegisterFlagCompletionFunc("sort", enumCompletions(query.SortOptions()))
	_ = cmd.RegisterFlagCompletionFunc("direction", enumCompletions([]query.Direction{query.Asc, query.Desc}))

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
