package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

var now = time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local)

func newService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	kv := store.NewMemory(map[string]string{store.KeyOnboardingComplete: "true"})
	p := planner.New(planner.WithStore(kv), planner.WithClock(func() time.Time { return now }))
	p.Load()
	return NewService(p), kv
}

func TestServiceAddTaskDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	dto, err := svc.AddTask(ctx, AddTaskOptions{Title: "Write report"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if dto.ID == "" {
		t.Fatalf("expected generated id")
	}
	if dto.Category != "work" || dto.CategoryName != "Work" {
		t.Fatalf("expected first category, got %s/%s", dto.Category, dto.CategoryName)
	}
	if dto.Priority != string(task.PriorityMedium) {
		t.Fatalf("expected medium priority, got %s", dto.Priority)
	}
	if dto.Completed {
		t.Fatalf("expected incomplete task")
	}
}

func TestServiceAddTaskValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "  "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "x", Priority: "urgent"}); err == nil {
		t.Fatalf("expected bad priority error")
	}
	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "x", Time: "25:99"}); !errors.Is(err, task.ErrInvalid) {
		t.Fatalf("expected invalid time error, got %v", err)
	}
}

func TestServiceAddTaskFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	dto, err := svc.AddTask(ctx, AddTaskOptions{
		Title:    "Dentist",
		Category: "health",
		Priority: "high",
		Date:     "2024-06-03",
		Time:     "14:30",
		Tags:     []string{"appointments"},
		Estimate: 45,
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if dto.Time != "14:30" || dto.EstimatedMinutes != 45 || len(dto.Tags) != 1 {
		t.Fatalf("unexpected dto %+v", dto)
	}
	want := time.Date(2024, 6, 3, 14, 30, 0, 0, time.Local).UTC().Format(time.RFC3339)
	if dto.Due != want {
		t.Fatalf("expected due %s, got %s", want, dto.Due)
	}
}

func TestServiceListTasks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	for _, opts := range []AddTaskOptions{
		{Title: "low one", Priority: "low"},
		{Title: "high one", Priority: "high"},
		{Title: "tomorrow", Date: now.AddDate(0, 0, 1).Format(time.RFC3339)},
	} {
		if _, err := svc.AddTask(ctx, opts); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	tasks, err := svc.ListTasks(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "high one" || tasks[1].Title != "low one" {
		t.Fatalf("unexpected list %+v", tasks)
	}

	tasks, err = svc.ListTasks(ctx, ListOptions{Filter: "upcoming"})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "tomorrow" {
		t.Fatalf("unexpected upcoming list %+v", tasks)
	}

	tasks, err = svc.ListTasks(ctx, ListOptions{Sort: "alphabetical", Direction: "desc"})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if tasks[0].Title != "low one" {
		t.Fatalf("expected reverse alphabetical, got %+v", tasks)
	}

	if _, err := svc.ListTasks(ctx, ListOptions{Filter: "someday"}); err == nil {
		t.Fatalf("expected bad filter error")
	}
}

func TestServiceToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	dto, err := svc.AddTask(ctx, AddTaskOptions{Title: "Finish report"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	toggled, err := svc.ToggleTask(ctx, dto.ID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected task to be completed")
	}

	hidden, err := svc.ListTasks(ctx, ListOptions{HideCompleted: true})
	if err != nil || len(hidden) != 0 {
		t.Fatalf("expected completed task hidden, got %+v %v", hidden, err)
	}

	if err := svc.DeleteTask(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if err := svc.DeleteTask(ctx, dto.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.ToggleTask(ctx, dto.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.GetTask(ctx, dto.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestServiceMoveTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	var ids []string
	for _, title := range []string{"A", "B", "C"} {
		dto, err := svc.AddTask(ctx, AddTaskOptions{Title: title})
		if err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
		ids = append(ids, dto.ID)
	}

	tasks, err := svc.MoveTask(ctx, ids[2], ids[0], "")
	if err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}
	if got := titles(tasks); got != "CAB" {
		t.Fatalf("expected CAB, got %s", got)
	}

	tasks, err = svc.MoveTask(ctx, ids[2], "", "down")
	if err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}
	if got := titles(tasks); got != "ACB" {
		t.Fatalf("expected ACB, got %s", got)
	}

	if _, err := svc.MoveTask(ctx, ids[0], "", "up"); err == nil {
		t.Fatalf("expected error moving the first task up")
	}
	if _, err := svc.MoveTask(ctx, "missing", "", "down"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.MoveTask(ctx, ids[0], "", "sideways"); err == nil {
		t.Fatalf("expected bad direction error")
	}
}

func titles(tasks []TaskDTO) string {
	out := ""
	for _, t := range tasks {
		out += t.Title
	}
	return out
}

func TestServiceCategories(t *testing.T) {
	ctx := context.Background()
	svc, kv := newService(t)

	c, err := svc.AddCategory(ctx, "Side Projects", "#000000")
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if c.ID != "side-projects" {
		t.Fatalf("unexpected id %q", c.ID)
	}
	if _, err := svc.AddCategory(ctx, "side projects", ""); err == nil {
		t.Fatalf("expected duplicate category error")
	}
	if got := len(svc.ListCategories(ctx)); got != 6 {
		t.Fatalf("expected 6 categories, got %d", got)
	}
	if _, err := kv.Get(store.KeyCategories); err != nil {
		t.Fatalf("expected categories persisted: %v", err)
	}
}

func TestServiceSeesExternalWrites(t *testing.T) {
	ctx := context.Background()
	svc, kv := newService(t)

	other := planner.New(planner.WithStore(kv), planner.WithClock(func() time.Time { return now }))
	other.Load()
	if _, err := other.AddTask(task.New("from cli", "work", task.PriorityLow, now)); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks, err := svc.ListTasks(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "from cli" {
		t.Fatalf("expected external task, got %+v", tasks)
	}
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	a, _ := svc.AddTask(ctx, AddTaskOptions{Title: "a", Priority: "high"})
	_, _ = svc.AddTask(ctx, AddTaskOptions{Title: "b", Priority: "low"})
	if _, err := svc.ToggleTask(ctx, a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	s := svc.Stats(ctx)
	if s.Total != 2 || s.Completed != 1 || s.Rate != 50 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.ByPriority[0].Name != "high" || s.ByPriority[0].Value != 1 {
		t.Fatalf("unexpected priority counts %+v", s.ByPriority)
	}
}
