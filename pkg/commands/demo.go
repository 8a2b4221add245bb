package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add a week of sample tasks",
		Example: `
PLANNER_PATH=/tmp/planner-demo planner demo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			d := demo.Demo{Planner: s.Planner}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
