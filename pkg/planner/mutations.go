package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/voice"
)

// ErrDuplicateCategory is returned when a category id is already used.
var ErrDuplicateCategory = errors.New("category id already exists")

// AddTask appends t to the raw collection. A missing id is generated. The
// task is validated first; an invalid task (for example an empty title)
// leaves the state unchanged and returns the validation error.
func (p *Planner) AddTask(t task.Task) (task.Task, error) {
	t = t.Clone()
	t.Title = strings.TrimSpace(t.Title)
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := task.Validate(t); err != nil {
		return task.Task{}, err
	}
	p.tasks = append(p.tasks, t)
	p.saveTasks()
	p.log.Debug("added task", zap.String("id", t.ID))
	p.toast(i18n.TaskAdded, t.Title, VariantSuccess)
	p.reconcile()
	return t.Clone(), nil
}

// UpdateTask replaces the task with the same id. A task that no longer
// exists is a no-op and reports false.
func (p *Planner) UpdateTask(t task.Task) (bool, error) {
	t = t.Clone()
	t.Title = strings.TrimSpace(t.Title)
	if err := task.Validate(t); err != nil {
		return false, err
	}
	i := task.IndexOf(p.tasks, t.ID)
	if i < 0 {
		return false, nil
	}
	p.tasks[i] = t
	p.saveTasks()
	p.toast(i18n.TaskUpdated, t.Title, VariantDefault)
	p.reconcile()
	return true, nil
}

// DeleteTask removes the task with id. Unknown ids are a no-op.
func (p *Planner) DeleteTask(id string) bool {
	i := task.IndexOf(p.tasks, id)
	if i < 0 {
		return false
	}
	removed := p.tasks[i]
	p.tasks = append(p.tasks[:i:i], p.tasks[i+1:]...)
	p.saveTasks()
	p.toast(i18n.TaskDeleted, removed.Title, VariantDefault)
	p.reconcile()
	return true
}

// ToggleCompletion flips the completed flag of id. Only completing a task
// sends a toast. Unknown ids are a no-op.
func (p *Planner) ToggleCompletion(id string) bool {
	i := task.IndexOf(p.tasks, id)
	if i < 0 {
		return false
	}
	p.tasks[i].Completed = !p.tasks[i].Completed
	p.saveTasks()
	if p.tasks[i].Completed {
		p.toast(i18n.TaskCompleted, p.tasks[i].Title, VariantSuccess)
	}
	p.reconcile()
	return true
}

// AddCategory appends c. A missing id is derived from the name, or is a
// fresh uuid when the derived id is taken or reserved. An explicit id that
// is taken or reserved returns ErrDuplicateCategory.
func (p *Planner) AddCategory(c task.Category) (task.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		c.ID = task.CategoryID(c.Name)
		if p.categoryTaken(c.ID) {
			c.ID = uuid.NewString()
		}
	} else if p.categoryTaken(c.ID) {
		return task.Category{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.ID)
	}
	if err := task.ValidateCategory(c); err != nil {
		return task.Category{}, err
	}
	p.categories = append(p.categories, c)
	p.saveCategories()
	p.toast(i18n.CategoryAdded, c.Name, VariantDefault)
	return c, nil
}

func (p *Planner) categoryTaken(id string) bool {
	if id == task.AllCategories {
		return true
	}
	_, ok := task.FindCategory(p.categories, id)
	return ok
}

// AddTaskForTomorrow adds a medium priority placeholder task dated one day
// from now in the first category.
func (p *Planner) AddTaskForTomorrow() (task.Task, error) {
	category := "work"
	if len(p.categories) > 0 {
		category = p.categories[0].ID
	}
	t := task.New(p.tr.T(i18n.TomorrowTask), category, task.PriorityMedium, p.now().AddDate(0, 0, 1))
	return p.AddTask(t)
}

// AddFromVoice parses a spoken command into a task and adds it.
func (p *Planner) AddFromVoice(text string) (task.Task, error) {
	t := voice.Parse(text, p.categories, p.now())
	added, err := p.AddTask(t)
	if err != nil {
		return task.Task{}, fmt.Errorf("voice command %q: %w", text, err)
	}
	return added, nil
}

// Reorder moves the task movedID to the raw position currently held by
// targetID. Both must exist and differ.
func (p *Planner) Reorder(movedID, targetID string) bool {
	from := task.IndexOf(p.tasks, movedID)
	to := task.IndexOf(p.tasks, targetID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	moved := p.tasks[from]
	tasks := append(p.tasks[:from:from], p.tasks[from+1:]...)
	tasks = append(tasks[:to], append([]task.Task{moved}, tasks[to:]...)...)
	p.tasks = tasks
	p.saveTasks()
	p.toast(i18n.TaskReordered, p.tr.T(i18n.TaskReorderedDescription), VariantDefault)
	p.reconcile()
	return true
}

// SetLanguage stores the language preference. Unsupported languages fall
// back to English.
func (p *Planner) SetLanguage(lang string) {
	tag := i18n.Match(lang)
	p.prefs.Language = tag
	p.params.Locale = tag
	p.tr = i18n.New(tag)
	p.set(store.KeyLanguage, []byte(tag.String()))
	p.reconcile()
}

// SetNotificationsEnabled stores the reminder opt-in.
func (p *Planner) SetNotificationsEnabled(enabled bool) {
	p.prefs.NotificationsEnabled = enabled
	p.saveBool(store.KeyNotificationsEnabled, enabled)
	if enabled {
		p.toast(i18n.EnableNotifications, "", VariantDefault)
	} else {
		p.toast(i18n.DisableNotifications, "", VariantDefault)
	}
}

// CompleteOnboarding records that the onboarding tour was seen.
func (p *Planner) CompleteOnboarding() {
	p.prefs.OnboardingComplete = true
	p.saveBool(store.KeyOnboardingComplete, true)
}

// ToggleTheme switches between light and dark and stores the choice.
func (p *Planner) ToggleTheme() Theme {
	if p.theme == ThemeDark {
		p.theme = ThemeLight
	} else {
		p.theme = ThemeDark
	}
	p.set(store.KeyTheme, []byte(p.theme))
	return p.theme
}

// SetView switches the top level screen.
func (p *Planner) SetView(v View) {
	p.view = v
}
