package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/remind"
	"tableflip.dev/planner/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	var (
		window string
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show tasks coming due soon",
		Long: options.Wrap80(`Show incomplete tasks with a time of day that come due within the
window. With --follow, keep running and print each reminder once as it comes
up; this needs notifications to be enabled with "planner set notifications on".`),
		Example: `
planner remind
planner remind --window 1h
planner remind --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			d, _, err := timeutil.ParseWindow(window, timeutil.DefaultReminderWindow)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := remind.Remind{
				Planner: s.Planner,
				Window:  d,
				Follow:  follow,
				Log:     s.Log,
			}
			err = r.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", timeutil.DefaultReminderWindow, "How far ahead to look, for example 5m or 1h.")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep running and print new reminders.")
	topLevel.AddCommand(cmd)
}
