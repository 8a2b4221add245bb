package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List categories",
		Example: `
planner categories
planner categories add "Side Projects" --color "#14b8a6"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := categories.Categories{Planner: s.Planner}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addCategoryAdd(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category name")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := categories.Categories{
				Name:    name,
				Color:   color,
				Planner: s.Planner,
			}
			err = c.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&color, "color", "",
		`Hex color, example: --color="#14b8a6". Picked automatically when unset.`)

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
