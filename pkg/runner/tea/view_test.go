package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/planner/pkg/task"
)

func TestViewTasks(t *testing.T) {
	f := newFixture(t, nil, "Alpha", "Bravo")
	f.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	f.press("down")

	view := f.m.View()
	for _, want := range []string{"Planner", "1 Tasks", "Tuesday, March 10", "All categories", "› [ ] !", "Alpha", "Bravo", "Work"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if h := lipgloss.Height(view); h != 30 {
		t.Fatalf("expected view to fill the terminal, got %d lines", h)
	}
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 100 {
			t.Fatalf("line %d is %d columns wide: %q", i, w, line)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	f := newFixture(t, nil)
	if view := f.m.View(); !strings.Contains(view, "No tasks here") {
		t.Fatalf("expected empty hint:\n%s", view)
	}
}

func TestViewTaskMeta(t *testing.T) {
	f := newFixture(t, nil)
	tk := task.New("Gym", "health", task.PriorityLow, testNow)
	tk.Time = task.Optional("18:30")
	tk.EstimatedMinutes = task.Optional(90)
	tk.Tags = []string{"fitness"}
	if _, err := f.p.AddTask(tk); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.send(tea.WindowSizeMsg{Width: 120, Height: 20})

	view := f.m.View()
	for _, want := range []string{"Health", "18:30", "#fitness"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewAnalyticsAndCalendar(t *testing.T) {
	f := newFixture(t, nil, "Alpha", "Bravo")
	f.send(tea.WindowSizeMsg{Width: 140, Height: 40})

	f.press("2")
	view := f.m.View()
	for _, want := range []string{"Progress", "0 of 2 done", "This week", "By category", "By priority"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in analytics:\n%s", want, view)
		}
	}

	f.press("3")
	view = f.m.View()
	for _, want := range []string{"March 2026", "Su Mo Tu We Th Fr Sa", "Tue Mar 10", "Alpha"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in calendar:\n%s", want, view)
		}
	}
}

func TestViewFormAndCommandPalette(t *testing.T) {
	f := newFixture(t, nil)

	f.press("n")
	if view := f.m.View(); !strings.Contains(view, "New task") || !strings.Contains(view, "Title") {
		t.Fatalf("expected add form:\n%s", view)
	}
	f.press("esc", ":")
	view := f.m.View()
	if !strings.Contains(view, ":quit") || !strings.Contains(view, ":sort") {
		t.Fatalf("expected palette suggestions:\n%s", view)
	}
}

func TestViewToasts(t *testing.T) {
	f := newFixture(t, nil, "Alpha")
	if view := f.m.View(); !strings.Contains(view, "Task added") {
		t.Fatalf("expected toast in view:\n%s", view)
	}
}
