package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Day   bool
	Week  bool
	Month bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Day, "day", "d", false,
		"Show day log.")
	cmd.Flags().BoolVarP(&o.Week, "week", "w", false,
		"Show week log.")
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Show month log.")
}
