package move

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

func init() {
	color.NoColor = true
}

func seeded(t *testing.T) (*planner.Planner, []string) {
	t.Helper()
	p := planner.New()
	var ids []string
	for _, title := range []string{"A", "B", "C"} {
		tk, err := p.AddTask(task.New(title, "work", task.PriorityMedium, p.Now()))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		ids = append(ids, tk.ID)
	}
	return p, ids
}

func order(p *planner.Planner) string {
	var out []string
	for _, t := range p.Tasks() {
		out = append(out, t.Title)
	}
	return strings.Join(out, "")
}

func TestMoveDirection(t *testing.T) {
	p, ids := seeded(t)
	m := Move{ID: ids[0], Direction: "down", Planner: p, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := order(p); got != "BAC" {
		t.Fatalf("expected BAC, got %s", got)
	}

	m = Move{ID: ids[0], Direction: "UP", Planner: p, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := order(p); got != "ABC" {
		t.Fatalf("expected ABC, got %s", got)
	}
}

func TestMoveToTarget(t *testing.T) {
	p, ids := seeded(t)
	m := Move{ID: ids[2], Target: ids[0], Planner: p, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := order(p); got != "CAB" {
		t.Fatalf("expected CAB, got %s", got)
	}
}

func TestMoveBadDirection(t *testing.T) {
	p, ids := seeded(t)
	m := Move{ID: ids[0], Direction: "sideways", Planner: p, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
