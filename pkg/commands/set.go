package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/planner"
)

func addSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSetLanguage(cmd)
	addSetNotifications(cmd)
	addSetTheme(cmd)

	topLevel.AddCommand(cmd)
}

func addSetLanguage(topLevel *cobra.Command) {
	var supported []string
	for _, tag := range i18n.Supported() {
		supported = append(supported, tag.String())
	}

	cmd := &cobra.Command{
		Use:       "language <" + strings.Join(supported, "|") + ">",
		Aliases:   []string{"lang"},
		Short:     "Set the language of messages",
		ValidArgs: supported,
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			s.Planner.SetLanguage(args[0])
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s\n", s.Planner.Preferences().Language)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addSetNotifications(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "notifications <on|off>",
		Short:     "Turn due-time reminders on or off",
		ValidArgs: []string{"on", "off"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on", "true", "yes":
				enabled = true
			case "off", "false", "no":
			default:
				return errors.New("expected on or off")
			}
			s, err := load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			s.Planner.SetNotificationsEnabled(enabled)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addSetTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme <light|dark>",
		Short:     "Choose the color scheme of the interactive view",
		ValidArgs: []string{string(planner.ThemeLight), string(planner.ThemeDark)},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			want := planner.Theme(strings.ToLower(args[0]))
			if want != planner.ThemeLight && want != planner.ThemeDark {
				return errors.New("expected light or dark")
			}
			s, err := load(quiet)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			if s.Planner.Theme() != want {
				s.Planner.ToggleTheme()
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", s.Planner.Theme())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
