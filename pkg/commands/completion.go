package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/task"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(planner completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(planner completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func categoryCompletions(toComplete string) []string {
	s, err := load(quiet)
	if err != nil {
		return nil
	}
	defer s.Close()

	var out []string
	for _, c := range s.Planner.Categories() {
		if strings.HasPrefix(c.ID, strings.ToLower(toComplete)) {
			out = append(out, c.ID)
		}
	}
	return out
}

// taskCompletions offers task ids described by their titles.
func taskCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := load(quiet)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	var out []string
	for _, t := range s.Planner.Tasks() {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func priorityCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return enumCompletions(task.Priorities())(cmd, args, toComplete)
}

func enumCompletions[T ~string](values []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, v := range values {
			if strings.HasPrefix(string(v), toComplete) {
				out = append(out, string(v))
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
