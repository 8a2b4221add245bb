package remove

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

func TestRemove(t *testing.T) {
	p := planner.New()
	a, _ := p.AddTask(task.New("Keep", "work", task.PriorityMedium, p.Now()))
	b, _ := p.AddTask(task.New("Drop", "work", task.PriorityMedium, p.Now()))

	var buf bytes.Buffer
	r := Remove{ID: b.ID, Planner: p, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := p.Task(b.ID); ok {
		t.Fatalf("expected task to be removed")
	}
	if _, ok := p.Task(a.ID); !ok {
		t.Fatalf("expected other task to remain")
	}
	if got := buf.String(); !strings.Contains(got, "Keep") || strings.Contains(got, "Drop") {
		t.Fatalf("unexpected listing:\n%s", got)
	}
}
