package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv("PLANNER_CONFIG_PATH", "")
	var buf bytes.Buffer
	n := Info{
		Config:  &store.Settings{Path: "/tmp/planner.db", LogFile: "/tmp/planner.log", LogLevel: "debug"},
		Planner: planner.New(),
		Out:     &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"env var not set", "Config.path:  /tmp/planner.db", "Config.log.level:  debug", "Tasks: 0 (0 completed)", "Work"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, buf.String())
		}
	}
}

func TestInfoNeedsPlanner(t *testing.T) {
	n := Info{Config: &store.Settings{}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a planner")
	}
}
