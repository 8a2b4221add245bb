package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	var (
		id    string
		title string
	)

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Change fields of a task",
		Long: options.Wrap80(`Change fields of a task. Only the flags given are changed; pass an
empty value, like --time="", to clear an optional field.`),
		Example: `
planner edit 3f1c2d4e --title "write the annual report" --priority high
planner edit 3f1c2d4e --on 3/14 --time ""
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

			e := edit.Edit{
				ID:      id,
				Planner: s.Planner,
			}
			flags := cmd.Flags()
			e.Title = options.Changed(flags, "title", title)
			e.Description = options.Changed(flags, "description", to.Description)
			e.Category = options.Changed(flags, "category", to.Category)
			e.Priority = options.Changed(flags, "priority", to.Priority)
			e.Time = options.Changed(flags, "time", to.Time)
			e.Estimate = options.Changed(flags, "estimate", to.Estimate)
			e.Attachment = options.Changed(flags, "attachment", to.Attachment)
			e.Tags = options.Changed(flags, "tag", to.Tags)
			if flags.Changed("on") {
				on, err := oo.GetOn(s.Planner.Now())
				if err != nil {
					return output.HandleError(err)
				}
				e.On = on
			}

			err = e.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddTaskArgs(cmd, to)
	options.AddAttachmentArg(cmd, to)
	options.AddOnArgs(cmd, oo)

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("priority", priorityCompletions)

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
