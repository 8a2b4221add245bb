package complete

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

func init() {
	color.NoColor = true
}

func TestComplete(t *testing.T) {
	p := planner.New()
	tk, err := p.AddTask(task.New("Write report", "work", task.PriorityMedium, p.Now()))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var buf bytes.Buffer
	c := Complete{ID: tk.ID[:8], Planner: p, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got, _ := p.Task(tk.ID); !got.Completed {
		t.Fatalf("expected task to be completed")
	}
	if !strings.Contains(buf.String(), "× Write report") {
		t.Fatalf("expected completed bullet:\n%s", buf.String())
	}

	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got, _ := p.Task(tk.ID); got.Completed {
		t.Fatalf("expected second run to reopen the task")
	}
}

func TestCompleteUnknown(t *testing.T) {
	c := Complete{ID: "nope", Planner: planner.New(), Out: &bytes.Buffer{}}
	if err := c.Do(context.Background()); !errors.Is(err, planner.ErrNoMatch) {
		t.Fatalf("expected no match, got %v", err)
	}
}
