// Package form is the task add and edit form: one text input per field,
// cycled with tab.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Field indexes the form inputs.
type Field int

const (
	FieldTitle Field = iota
	FieldCategory
	FieldPriority
	FieldTime
	FieldTags
	FieldEstimate
	FieldDescription
	fieldCount
)

var labels = [fieldCount]string{
	FieldTitle:       "Title",
	FieldCategory:    "Category",
	FieldPriority:    "Priority",
	FieldTime:        "Time",
	FieldTags:        "Tags",
	FieldEstimate:    "Estimate",
	FieldDescription: "Notes",
}

// Model holds the inputs and the task being edited, if any.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   Field
	editing *task.Task
}

// New returns an empty form for a new task in category.
func New(category string) Model {
	m := Model{}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[FieldTitle].Placeholder = "What needs doing?"
	m.inputs[FieldCategory].Placeholder = "work"
	m.inputs[FieldPriority].Placeholder = "high, medium or low"
	m.inputs[FieldTime].Placeholder = "14:30"
	m.inputs[FieldTags].Placeholder = "comma separated"
	m.inputs[FieldEstimate].Placeholder = "45 or 1h30m"
	m.inputs[FieldCategory].SetValue(category)
	m.inputs[FieldPriority].SetValue(string(task.PriorityMedium))
	m.inputs[FieldTitle].Focus()
	return m
}

// Edit returns a form prefilled from t.
func Edit(t task.Task) Model {
	m := New(t.Category)
	m.editing = &t
	m.inputs[FieldTitle].SetValue(t.Title)
	m.inputs[FieldPriority].SetValue(string(t.Priority))
	if t.Time != nil {
		m.inputs[FieldTime].SetValue(*t.Time)
	}
	m.inputs[FieldTags].SetValue(strings.Join(t.Tags, ", "))
	if t.EstimatedMinutes != nil {
		m.inputs[FieldEstimate].SetValue(timeutil.FormatEstimate(*t.EstimatedMinutes))
	}
	if t.Description != nil {
		m.inputs[FieldDescription].SetValue(*t.Description)
	}
	m.inputs[FieldTitle].CursorEnd()
	return m
}

// Editing reports whether the form changes an existing task.
func (m Model) Editing() bool {
	return m.editing != nil
}

func (m Model) Focused() Field {
	return m.focus
}

// Next moves focus by delta, wrapping around.
func (m *Model) Next(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = Field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.inputs[m.focus].Focus()
}

// Update routes a message to the focused input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Value returns the raw text of field.
func (m Model) Value(f Field) string {
	return strings.TrimSpace(m.inputs[f].Value())
}

// SetValue replaces the text of field.
func (m *Model) SetValue(f Field, v string) {
	m.inputs[f].SetValue(v)
}

// Task builds the task described by the form. Dates come from the task
// being edited, or day for a new task. categories resolves names to ids.
func (m Model) Task(day time.Time, categories []task.Category) (task.Task, error) {
	var t task.Task
	if m.editing != nil {
		t = m.editing.Clone()
	} else {
		t = task.New("", "", task.PriorityMedium, day)
	}
	t.Title = m.Value(FieldTitle)

	category := task.CategoryID(m.Value(FieldCategory))
	if _, ok := task.FindCategory(categories, category); !ok {
		return task.Task{}, fmt.Errorf("unknown category %q", m.Value(FieldCategory))
	}
	t.Category = category

	p, err := task.ParsePriority(m.Value(FieldPriority))
	if err != nil {
		return task.Task{}, err
	}
	t.Priority = p

	t.Time = nil
	if v := m.Value(FieldTime); v != "" {
		t.Time = task.Optional(v)
	}
	t.Tags = nil
	for _, tag := range strings.Split(m.Value(FieldTags), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			t.Tags = append(t.Tags, tag)
		}
	}
	t.EstimatedMinutes = nil
	if v := m.Value(FieldEstimate); v != "" {
		minutes, err := timeutil.ParseEstimate(v)
		if err != nil {
			return task.Task{}, err
		}
		t.EstimatedMinutes = task.Optional(minutes)
	}
	t.Description = nil
	if v := m.Value(FieldDescription); v != "" {
		t.Description = task.Optional(v)
	}
	return t, nil
}

// Lines renders one "label: input" line per field, marking the focused one.
func (m Model) Lines() []string {
	lines := make([]string, 0, fieldCount+1)
	for i, in := range m.inputs {
		marker := "  "
		if Field(i) == m.focus {
			marker = "› "
		}
		lines = append(lines, fmt.Sprintf("%s%-9s %s", marker, labels[i], in.View()))
	}
	lines = append(lines, "", "tab next field · enter save · esc cancel")
	return lines
}
