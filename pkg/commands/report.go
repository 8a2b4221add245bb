package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/report"
	"tableflip.dev/planner/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"stats"},
		Short:   "Display progress statistics",
		Long: `Report shows the completion rate, this week's activity, and the split of
tasks by category and priority.

Examples:
  planner report
  planner report --last 3d
  planner report --last 1w2d --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := report.Report{
				Planner: s.Planner,
				JSON:    output.JSON,
			}
			if last != "" {
				duration, _, err := timeutil.ParseWindow(last, "")
				if err != nil {
					return output.HandleError(err)
				}
				r.Since = s.Planner.Now().Add(-duration)
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&last, "last", "", "Only count tasks dated within this window, for example 1w2d.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
