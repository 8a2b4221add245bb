package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"completed", "done", "toggle"},
		Short:   "Toggle whether a task is complete",
		Example: `
planner complete 3f1c2d4e
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			id = args[0]

			return nil
		},
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := complete.Complete{
				ID:      id,
				Planner: s.Planner,
			}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
