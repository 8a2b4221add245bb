// Package info prints where the planner keeps its state.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/store"
)

type Info struct {
	Config  *store.Settings
	Planner *planner.Planner
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "PLANNER_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "PLANNER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.log.file: ", n.Config.LogFile)
	_, _ = fmt.Fprintln(out, "Config.log.level: ", n.Config.LogLevel)

	if n.Planner == nil {
		return fmt.Errorf("failed to create planner")
	}

	prefs := n.Planner.Preferences()
	s := stats.Summarize(n.Planner.Tasks())
	_, _ = fmt.Fprintf(out, "Language: %s\n", prefs.Language)
	_, _ = fmt.Fprintf(out, "Notifications: %t\n", prefs.NotificationsEnabled)
	_, _ = fmt.Fprintf(out, "Theme: %s\n", n.Planner.Theme())
	_, _ = fmt.Fprintf(out, "Tasks: %d (%d completed)\n", s.Total, s.Completed)

	_, _ = fmt.Fprintf(out, "Categories:\n")
	for _, c := range n.Planner.Categories() {
		_, _ = fmt.Fprintf(out, "  %s\n", c.Name)
	}
	if len(n.Planner.Categories()) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no categories")
	}

	return nil
}
