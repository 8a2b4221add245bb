package planner

import (
	"time"

	"tableflip.dev/planner/pkg/keys"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/task"
)

// DialogKind names a modal surface.
type DialogKind string

const (
	DialogShortcuts  DialogKind = "shortcuts"
	DialogOnboarding DialogKind = "onboarding"
	DialogEdit       DialogKind = "edit"
	DialogFilter     DialogKind = "filter"
	DialogSort       DialogKind = "sort"
)

// Dialog is one entry of the dialog stack. TaskID is set for DialogEdit.
type Dialog struct {
	Kind   DialogKind
	TaskID string
}

// Effect asks the front end to do something the planner cannot, such as
// moving keyboard focus.
type Effect int

const (
	EffectNone Effect = iota
	EffectFocusSearch
	EffectFocusAddForm
)

// SelectedID returns the cursor. The cursor is cleared whenever its task
// leaves the ordered list, so a returned id is always displayed.
func (p *Planner) SelectedID() (string, bool) {
	return p.selected, p.selected != ""
}

// Select moves the cursor to id. Ids not in the ordered list clear it.
func (p *Planner) Select(id string) {
	p.selected = id
	p.reconcile()
}

// ClearSelection drops the cursor.
func (p *Planner) ClearSelection() {
	p.selected = ""
}

// reconcile clears a cursor whose task is no longer displayed, either
// because it was deleted or because the parameters filter it out.
func (p *Planner) reconcile() {
	if p.selected == "" {
		return
	}
	if task.IndexOf(p.ordered(), p.selected) < 0 {
		p.selected = ""
	}
}

// Navigate moves the cursor by delta within the ordered list. Without a
// cursor either direction selects the first item. Moving past either end
// is a no-op.
func (p *Planner) Navigate(delta int) {
	list := p.ordered()
	if len(list) == 0 {
		p.selected = ""
		return
	}
	i := task.IndexOf(list, p.selected)
	if i < 0 {
		p.selected = list[0].ID
		return
	}
	if j := i + delta; j >= 0 && j < len(list) {
		p.selected = list[j].ID
	}
}

// MoveSelected reorders the selected task past its neighbour in the
// ordered list: delta 1 swaps with the successor, -1 with the predecessor.
func (p *Planner) MoveSelected(delta int) bool {
	list := p.ordered()
	i := task.IndexOf(list, p.selected)
	if i < 0 {
		return false
	}
	j := i + delta
	if j < 0 || j >= len(list) {
		return false
	}
	return p.Reorder(list[i].ID, list[j].ID)
}

// OpenDialog pushes d onto the dialog stack.
func (p *Planner) OpenDialog(d Dialog) {
	p.dialogs = append(p.dialogs, d)
}

// CloseDialog pops the topmost dialog. Closing onboarding completes it.
// The cursor is untouched.
func (p *Planner) CloseDialog() (Dialog, bool) {
	if len(p.dialogs) == 0 {
		return Dialog{}, false
	}
	top := p.dialogs[len(p.dialogs)-1]
	p.dialogs = p.dialogs[:len(p.dialogs)-1]
	if top.Kind == DialogOnboarding {
		p.CompleteOnboarding()
	}
	return top, true
}

// TopDialog returns the topmost open dialog.
func (p *Planner) TopDialog() (Dialog, bool) {
	if len(p.dialogs) == 0 {
		return Dialog{}, false
	}
	return p.dialogs[len(p.dialogs)-1], true
}

// Dialogs returns the open dialogs, bottom first.
func (p *Planner) Dialogs() []Dialog {
	return append([]Dialog(nil), p.dialogs...)
}

// Dispatch runs the handler for cmd. While a dialog is open only
// CloseDialog has an effect.
func (p *Planner) Dispatch(cmd keys.Command) Effect {
	if len(p.dialogs) > 0 {
		if cmd == keys.CloseDialog {
			p.CloseDialog()
		}
		return EffectNone
	}

	switch cmd {
	case keys.NavigateUp:
		p.Navigate(-1)
	case keys.NavigateDown:
		p.Navigate(1)
	case keys.MoveUp:
		p.MoveSelected(-1)
	case keys.MoveDown:
		p.MoveSelected(1)
	case keys.ToggleComplete:
		if id, ok := p.SelectedID(); ok {
			p.ToggleCompletion(id)
		}
	case keys.Delete:
		if id, ok := p.SelectedID(); ok {
			p.DeleteTask(id)
		}
	case keys.EditSelected:
		if id, ok := p.SelectedID(); ok {
			p.OpenDialog(Dialog{Kind: DialogEdit, TaskID: id})
		}
	case keys.ShowShortcuts:
		p.OpenDialog(Dialog{Kind: DialogShortcuts})
	case keys.ShowOnboarding:
		p.OpenDialog(Dialog{Kind: DialogOnboarding})
	case keys.OpenFilter:
		p.OpenDialog(Dialog{Kind: DialogFilter})
	case keys.OpenSort:
		p.OpenDialog(Dialog{Kind: DialogSort})
	case keys.FocusSearch:
		return EffectFocusSearch
	case keys.FocusAddForm:
		return EffectFocusAddForm
	case keys.ToggleTheme:
		p.ToggleTheme()
	case keys.ViewTasks:
		p.SetView(ViewTasks)
	case keys.ViewAnalytics:
		p.SetView(ViewAnalytics)
	case keys.ViewCalendar:
		p.SetView(ViewCalendar)
	case keys.ToggleShowCompleted:
		p.SetShowCompleted(!p.params.ShowCompleted)
	}
	return EffectNone
}

func (p *Planner) SetActiveCategory(id string) {
	if id == "" {
		id = task.AllCategories
	}
	p.params.ActiveCategory = id
	p.reconcile()
}

func (p *Planner) SetSelectedDate(d time.Time) {
	p.params.SelectedDate = d
	p.reconcile()
}

func (p *Planner) SetFilter(f query.FilterOption) {
	p.params.Filter = f
	p.reconcile()
}

func (p *Planner) SetShowCompleted(show bool) {
	p.params.ShowCompleted = show
	p.reconcile()
}

func (p *Planner) SetSearch(s string) {
	p.params.Search = s
	p.reconcile()
}

// SetSort changes the sort key and direction. Sorting never removes tasks,
// so the cursor survives.
func (p *Planner) SetSort(by query.SortOption, dir query.Direction) {
	p.params.Sort = by
	p.params.Direction = dir
}
