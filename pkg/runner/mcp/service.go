// Package mcp provides the Model Context Protocol server integration for the
// planner.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/task"
)

// Service serializes MCP tool calls onto a single planner. mcp-go may invoke
// handlers concurrently, and the planner is not safe for concurrent use.
type Service struct {
	mu sync.Mutex
	p  *planner.Planner
}

// ErrTaskNotFound is returned when a tool names an unknown task.
var ErrTaskNotFound = errors.New("task not found")

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Completed        bool     `json:"completed"`
	Category         string   `json:"category"`
	CategoryName     string   `json:"categoryName,omitempty"`
	Priority         string   `json:"priority"`
	Date             string   `json:"date"`
	Time             string   `json:"time,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	EstimatedMinutes int      `json:"estimatedMinutes,omitempty"`
	Attachment       string   `json:"attachment,omitempty"`
	Due              string   `json:"due,omitempty"`
}

// ListOptions narrows list_tasks. Empty fields use the planner defaults.
type ListOptions struct {
	Category      string
	Filter        string
	Search        string
	Sort          string
	Direction     string
	Date          string
	HideCompleted bool
}

// AddTaskOptions captures the parameters used to create a task.
type AddTaskOptions struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Date        string
	Time        string
	Tags        []string
	Estimate    int
}

// NewService wraps a loaded planner.
func NewService(p *planner.Planner) *Service {
	return &Service{p: p}
}

// ListTasks returns the ordered list for the given options without changing
// the planner's own view parameters.
func (s *Service) ListTasks(ctx context.Context, opts ListOptions) ([]TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	params, err := s.params(opts)
	if err != nil {
		return nil, err
	}
	ordered := query.Apply(s.p.Tasks(), params, s.p.Now())
	out := make([]TaskDTO, 0, len(ordered))
	for _, t := range ordered {
		out = append(out, s.toDTO(t))
	}
	return out, nil
}

func (s *Service) params(opts ListOptions) (query.Params, error) {
	params := query.DefaultParams(s.p.Now())
	params.Locale = s.p.Preferences().Language
	if strings.TrimSpace(opts.Category) != "" {
		params.ActiveCategory = strings.TrimSpace(opts.Category)
	}
	if opts.Filter != "" {
		f, err := query.ParseFilter(opts.Filter)
		if err != nil {
			return params, err
		}
		params.Filter = f
	}
	if opts.Sort != "" {
		by, err := query.ParseSort(opts.Sort)
		if err != nil {
			return params, err
		}
		params.Sort = by
	}
	if opts.Direction != "" {
		dir, err := query.ParseDirection(opts.Direction)
		if err != nil {
			return params, err
		}
		params.Direction = dir
	}
	if opts.Date != "" {
		d, err := task.ParseTime(opts.Date)
		if err != nil {
			return params, fmt.Errorf("invalid date: %w", err)
		}
		params.SelectedDate = d
	}
	params.Search = opts.Search
	params.ShowCompleted = !opts.HideCompleted
	return params, nil
}

// GetTask returns a single task.
func (s *Service) GetTask(ctx context.Context, id string) (*TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	t, ok := s.p.Task(strings.TrimSpace(id))
	if !ok {
		return nil, ErrTaskNotFound
	}
	dto := s.toDTO(t)
	return &dto, nil
}

// AddTask creates a task. Category defaults to the first category, priority
// to medium and the date to now.
func (s *Service) AddTask(ctx context.Context, opts AddTaskOptions) (*TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	priority := task.PriorityMedium
	if opts.Priority != "" {
		var err error
		if priority, err = task.ParsePriority(opts.Priority); err != nil {
			return nil, err
		}
	}
	date := s.p.Now()
	if opts.Date != "" {
		d, err := task.ParseTime(opts.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		date = d
	}
	category := strings.TrimSpace(opts.Category)
	if category == "" {
		if cats := s.p.Categories(); len(cats) > 0 {
			category = cats[0].ID
		}
	}

	t := task.New(opts.Title, category, priority, date)
	if d := strings.TrimSpace(opts.Description); d != "" {
		t.Description = task.Optional(d)
	}
	if tm := strings.TrimSpace(opts.Time); tm != "" {
		t.Time = task.Optional(tm)
	}
	if len(opts.Tags) > 0 {
		t.Tags = append([]string(nil), opts.Tags...)
	}
	if opts.Estimate > 0 {
		t.EstimatedMinutes = task.Optional(opts.Estimate)
	}

	added, err := s.p.AddTask(t)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(added)
	return &dto, nil
}

// ToggleTask flips completion.
func (s *Service) ToggleTask(ctx context.Context, id string) (*TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	if !s.p.ToggleCompletion(strings.TrimSpace(id)) {
		return nil, ErrTaskNotFound
	}
	t, _ := s.p.Task(strings.TrimSpace(id))
	dto := s.toDTO(t)
	return &dto, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	if !s.p.DeleteTask(strings.TrimSpace(id)) {
		return ErrTaskNotFound
	}
	return nil
}

// MoveTask reorders the raw collection. With a target the task takes the
// target's position; otherwise direction "up" or "down" swaps it with its
// neighbour in manual order.
func (s *Service) MoveTask(ctx context.Context, id, target, direction string) ([]TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	id = strings.TrimSpace(id)
	raw := s.p.Tasks()
	i := task.IndexOf(raw, id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}
	target = strings.TrimSpace(target)
	if target == "" {
		switch strings.ToLower(strings.TrimSpace(direction)) {
		case "up":
			if i == 0 {
				return nil, errors.New("task is already first")
			}
			target = raw[i-1].ID
		case "down", "":
			if i == len(raw)-1 {
				return nil, errors.New("task is already last")
			}
			target = raw[i+1].ID
		default:
			return nil, fmt.Errorf("unknown direction %q (expected up or down)", direction)
		}
	}
	if !s.p.Reorder(id, target) {
		return nil, ErrTaskNotFound
	}

	tasks := s.p.Tasks()
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.toDTO(t))
	}
	return out, nil
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) []task.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()
	return s.p.Categories()
}

// AddCategory creates a category.
func (s *Service) AddCategory(ctx context.Context, name, color string) (task.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	c := task.Category{Name: name, Color: color}
	if _, exists := s.p.Category(task.CategoryID(name)); exists {
		return task.Category{}, fmt.Errorf("category %q already exists", name)
	}
	return s.p.AddCategory(c)
}

// Summary reports progress figures over all tasks.
type Summary struct {
	Total      int           `json:"total"`
	Completed  int           `json:"completed"`
	Rate       int           `json:"completionRate"`
	ByCategory []stats.Count `json:"byCategory"`
	ByPriority []stats.Count `json:"byPriority"`
}

// Stats summarizes all tasks.
func (s *Service) Stats(ctx context.Context) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reload()

	tasks := s.p.Tasks()
	sum := stats.Summarize(tasks)
	return Summary{
		Total:      sum.Total,
		Completed:  sum.Completed,
		Rate:       sum.Rate,
		ByCategory: stats.ByCategory(tasks),
		ByPriority: stats.ByPriority(tasks),
	}
}

func (s *Service) toDTO(t task.Task) TaskDTO {
	dto := TaskDTO{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Category:  t.Category,
		Priority:  string(t.Priority),
		Date:      t.Date.UTC().Format(time.RFC3339),
		Tags:      t.Tags,
	}
	if c, ok := s.p.Category(t.Category); ok {
		dto.CategoryName = c.Name
	}
	if t.Description != nil {
		dto.Description = *t.Description
	}
	if t.Time != nil {
		dto.Time = *t.Time
	}
	if t.EstimatedMinutes != nil {
		dto.EstimatedMinutes = *t.EstimatedMinutes
	}
	if t.Attachment != nil {
		dto.Attachment = *t.Attachment
	}
	if due, ok := t.DueAt(); ok {
		dto.Due = due.UTC().Format(time.RFC3339)
	}
	return dto
}
