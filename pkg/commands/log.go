package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"calendar", "cal"},
		Short:   "Show the day, week or month around a date",
		Example: `
planner log --week
planner log --month --on 4/1
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
			l := log.Log{
				Planner: s.Planner,
				Day:     lo.Day,
				Week:    lo.Week,
				Month:   lo.Month,
				ShowID:  io.ShowID,
			}
			if on != nil {
				l.On = *on
			}
			if !l.Day && !l.Week && !l.Month {
				l.Day = true
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
