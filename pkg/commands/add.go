package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	var (
		title    string
		voice    bool
		tomorrow bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Example: `
planner add write the quarterly report --priority high --time 14:30
planner add --on tomorrow --category health --tag gym morning run
planner add --voice call the dentist important health
planner add --tomorrow
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 && !tomorrow {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			on, err := oo.GetOn(s.Planner.Now())
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Planner:     s.Planner,
				Title:       title,
				Description: to.Description,
				Category:    to.Category,
				Priority:    to.Priority,
				On:          on,
				Time:        to.Time,
				Tags:        to.Tags,
				Estimate:    to.Estimate,
				Voice:       voice,
				Tomorrow:    tomorrow,
				ShowID:      io.ShowID,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&voice, "voice", false,
		options.Wrap80(`Treat the title as a spoken command: "important" or "high priority" and category names are picked out of it.`))
	cmd.Flags().BoolVar(&tomorrow, "tomorrow", false,
		"Add a placeholder task for tomorrow.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("priority", priorityCompletions)

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
