package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	var (
		id   string
		link bool
	)

	cmd := &cobra.Command{
		Use:   "share <task id>",
		Short: "Print a task as text to paste elsewhere",
		Example: `
planner share 3f1c2d4e
planner share 3f1c2d4e --link
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
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			sh := share.Share{
				ID:      id,
				Link:    link,
				Planner: s.Planner,
			}
			err = sh.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&link, "link", false, "Also print a share link.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
