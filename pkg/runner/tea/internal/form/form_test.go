package form

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

func TestNewTask(t *testing.T) {
	m := New("work")
	m.SetValue(FieldTitle, "  Write report ")
	m.SetValue(FieldCategory, "Health")
	m.SetValue(FieldPriority, "High")
	m.SetValue(FieldTime, "09:15")
	m.SetValue(FieldTags, "a, ,b")
	m.SetValue(FieldEstimate, "1h")

	got, err := m.Task(day, task.DefaultCategories())
	if err != nil {
		t.Fatalf("task: %v", err)
	}
	if got.Title != "Write report" || got.Category != "health" || got.Priority != task.PriorityHigh {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.Time == nil || *got.Time != "09:15" || len(got.Tags) != 2 || *got.EstimatedMinutes != 60 {
		t.Fatalf("unexpected optional fields %+v", got)
	}
	if !got.Date.SameDay(day) || m.Editing() {
		t.Fatalf("expected a new task on day")
	}
}

func TestEditKeepsIdentity(t *testing.T) {
	orig := task.New("Draft", "work", task.PriorityLow, day)
	orig.Completed = true
	orig.Time = task.Optional("08:00")

	m := Edit(orig)
	if !m.Editing() || m.Value(FieldTitle) != "Draft" || m.Value(FieldTime) != "08:00" {
		t.Fatalf("expected prefilled form")
	}
	m.SetValue(FieldTime, "")
	got, err := m.Task(day.AddDate(0, 0, 5), task.DefaultCategories())
	if err != nil {
		t.Fatalf("task: %v", err)
	}
	if got.ID != orig.ID || !got.Completed || !got.Date.SameDay(day) {
		t.Fatalf("expected id, completion and date kept, got %+v", got)
	}
	if got.Time != nil {
		t.Fatalf("expected time cleared")
	}
}

func TestTaskErrors(t *testing.T) {
	tests := map[Field]string{
		FieldCategory: "garden",
		FieldPriority: "urgent",
		FieldEstimate: "soon",
	}
	for f, v := range tests {
		m := New("work")
		m.SetValue(FieldTitle, "x")
		m.SetValue(f, v)
		if _, err := m.Task(day, task.DefaultCategories()); err == nil {
			t.Fatalf("expected error for %s=%q", labels[f], v)
		}
	}
}

func TestNextWraps(t *testing.T) {
	m := New("work")
	m.Next(-1)
	if m.Focused() != FieldDescription {
		t.Fatalf("expected wrap to last field, got %d", m.Focused())
	}
	m.Next(1)
	if m.Focused() != FieldTitle {
		t.Fatalf("expected wrap to first field, got %d", m.Focused())
	}
}
