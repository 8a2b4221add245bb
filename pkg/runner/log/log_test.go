package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

func init() {
	color.NoColor = true
}

func TestLog(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	p := planner.New(planner.WithClock(func() time.Time { return now }))
	for i, title := range []string{"Today", "Tomorrow", "Next month"} {
		day := now.AddDate(0, 0, i)
		if i == 2 {
			day = now.AddDate(0, 1, 0)
		}
		if _, err := p.AddTask(task.New(title, "work", task.PriorityMedium, day)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	var buf bytes.Buffer
	l := Log{Planner: p, Day: true, Week: true, Month: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("log: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"March, 2026 - 2 tasks", "Monday, March 9 - 0 tasks", "Wednesday, March 11 - 1 task", "Tuesday, March 10 - 1 task"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Next month") {
		t.Fatalf("expected next month's task to be excluded:\n%s", got)
	}
}
