package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/planner/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "open the interactive planner",
		Example: `
planner ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("planner ui needs an interactive terminal")
			}
			ui := teaui.UI{}
			s, err := load(ui.Notifier())
			if err != nil {
				return err
			}
			defer s.Close()

			ui.Planner = s.Planner
			ui.Store = s.Disk
			ui.Log = s.Log
			return ui.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
