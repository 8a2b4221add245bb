package reminder

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

func at(now time.Time, clock string, completed bool) task.Task {
	t := task.New("t "+clock, "work", task.PriorityMedium, now)
	t.Time = task.Optional(clock)
	t.Completed = completed
	return t
}

func TestDue(t *testing.T) {
	now := time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)
	noTime := task.New("no time", "work", task.PriorityLow, now)
	tasks := []task.Task{
		at(now, "10:04", false),
		at(now, "10:00", false), // exactly now is excluded
		at(now, "10:05", false), // window end is included
		at(now, "10:06", false),
		at(now, "10:02", true),
		at(now, "09:59", false),
		at(now, "10:01", false),
		noTime,
	}

	got := Due(tasks, now, 0)
	want := []string{"t 10:01", "t 10:04", "t 10:05"}
	if len(got) != len(want) {
		t.Fatalf("expected %d reminders, got %d: %+v", len(want), len(got), got)
	}
	for i, r := range got {
		if r.Task.Title != want[i] {
			t.Fatalf("reminder %d: got %q, want %q", i, r.Task.Title, want[i])
		}
	}
}

func TestDueOtherDay(t *testing.T) {
	now := time.Date(2024, 5, 6, 23, 58, 0, 0, time.Local)
	tomorrow := task.New("early", "work", task.PriorityHigh, now.Add(24*time.Hour))
	tomorrow.Time = task.Optional("00:01")
	if got := Due([]task.Task{tomorrow}, now, 0); len(got) != 1 {
		t.Fatalf("expected the next-day task to be due, got %+v", got)
	}
	if got := Due([]task.Task{tomorrow}, now, time.Minute); len(got) != 0 {
		t.Fatalf("expected nothing in a one minute window, got %+v", got)
	}
}

func TestTrackerFresh(t *testing.T) {
	now := time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)
	tasks := []task.Task{at(now, "10:03", false)}

	tr := NewTracker()
	if got := tr.Fresh(Due(tasks, now, 0)); len(got) != 1 {
		t.Fatalf("expected first check to report, got %d", len(got))
	}
	if got := tr.Fresh(Due(tasks, now.Add(time.Minute), 0)); len(got) != 0 {
		t.Fatalf("expected repeat check to be silent, got %d", len(got))
	}
	tasks[0].Time = task.Optional("10:04")
	if got := tr.Fresh(Due(tasks, now.Add(time.Minute), 0)); len(got) != 1 {
		t.Fatalf("expected rescheduled task to report again, got %d", len(got))
	}
}
