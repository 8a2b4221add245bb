package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// TaskOptions carries the task field flags shared by add and edit.
type TaskOptions struct {
	Description string
	Category    string
	Priority    string
	Time        string
	Tags        []string
	Estimate    string
	Attachment  string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description of the task.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category id or name.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: high, medium or low.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Time of day, example: --time="14:30".`)
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag the task, repeat for more tags.")
	cmd.Flags().StringVarP(&o.Estimate, "estimate", "e", "",
		Wrap80(`Estimated effort, in minutes or a duration, example: --estimate=45 or --estimate=1h30m.`))
}

// AddAttachmentArg registers the attachment flag, which only edit exposes.
func AddAttachmentArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Attachment, "attachment", "",
		"Attach a file name or link to the task.")
}

// Changed returns a pointer to v when the named flag was given on the
// command line, and nil otherwise.
func Changed[T any](flags *pflag.FlagSet, name string, v T) *T {
	if !flags.Changed(name) {
		return nil
	}
	return &v
}
