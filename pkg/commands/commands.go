package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: options.Wrap80("A daily planner for tasks, on the command line and in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addCategories(topLevel)
	addLog(topLevel)
	addReport(topLevel)
	addRemind(topLevel)
	addShare(topLevel)
	addSet(topLevel)
	addDemo(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
