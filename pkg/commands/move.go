package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	var (
		id        string
		target    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "move <task id> (up|down|<target id>)",
		Short: "Reorder a task within its day",
		Long: options.Wrap80(`Move a task one place up or down in the list for its day, or to the
position of another task. The manual order breaks ties when sorting.`),
		Example: `
planner move 3f1c2d4e up
planner move 3f1c2d4e 9a8b7c6d
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a task id and a direction or target id")
			}
			id = args[0]
			switch args[1] {
			case "up", "down":
				direction = args[1]
			default:
				target = args[1]
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			m := move.Move{
				ID:        id,
				Target:    target,
				Direction: direction,
				Planner:   s.Planner,
			}
			err = m.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
