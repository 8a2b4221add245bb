package teaui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/keys"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/reminder"
	"tableflip.dev/planner/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/planner/pkg/runner/tea/internal/form"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.SetWidth(msg.Width)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		cmds = append(cmds, m.updateKey(msg))
	case storeChangedMsg:
		m.log.Debug("store changed on disk", zap.String("key", msg.key))
		m.p.Reload()
		cmds = append(cmds, m.waitForStore())
	case reminderTickMsg:
		m.checkReminders(time.Time(msg))
		cmds = append(cmds, nextReminderTick())
	case toastExpireMsg:
		m.dropExpiredToasts()
		cmds = append(cmds, expireToasts())
	}

	m.syncTheme()
	m.pullToasts()
	m.syncFooter()
	m.syncGuide()
	return m, tea.Batch(cmds...)
}

func (m *Model) syncFooter() {
	switch m.mode {
	case modeCommand:
		m.footer.SetMode(bottombar.ModeCommand)
		m.footer.UpdateCommandInput(m.command.Value(), m.command.View())
	case modeSearch, modeForm:
		m.footer.SetMode(bottombar.ModeInput)
	default:
		m.footer.SetMode(bottombar.ModeNormal)
	}
	m.footer.SetHelp(m.help.ShortHelpView(m.helpFor()))
}

func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeCommand:
		return m.updateCommand(msg)
	}

	if d, ok := m.p.TopDialog(); ok {
		switch d.Kind {
		case planner.DialogFilter, planner.DialogSort:
			if m.updateOptions(d.Kind, msg) {
				return nil
			}
		case planner.DialogShortcuts, planner.DialogOnboarding:
			if msg.String() != "esc" {
				return m.guide.Update(msg)
			}
		}
		m.p.Dispatch(decode(msg))
		return nil
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case ":":
		m.mode = modeCommand
		m.command.Reset()
		m.footer.SetStatus("")
		return m.command.Focus()
	case "left":
		m.shiftDay(-1)
		return nil
	case "right":
		m.shiftDay(1)
		return nil
	case "tab":
		m.cycleCategory(1)
		return nil
	case "shift+tab":
		m.cycleCategory(-1)
		return nil
	}

	switch m.p.Dispatch(decode(msg)) {
	case planner.EffectFocusSearch:
		m.mode = modeSearch
		m.search.SetValue(m.p.Params().Search)
		m.search.CursorEnd()
		return m.search.Focus()
	case planner.EffectFocusAddForm:
		return m.openForm(form.New(m.defaultCategory()))
	}

	if d, ok := m.p.TopDialog(); ok {
		switch d.Kind {
		case planner.DialogEdit:
			if t, ok := m.p.Task(d.TaskID); ok {
				return m.openForm(form.Edit(t))
			}
			m.p.CloseDialog()
		case planner.DialogFilter:
			m.option = max(slices.Index(query.FilterOptions(), m.p.Params().Filter), 0)
		case planner.DialogSort:
			m.option = max(slices.Index(query.SortOptions(), m.p.Params().Sort), 0)
		}
	}
	return nil
}

func decode(msg tea.KeyMsg) keys.Command {
	return keys.Decode(keys.Parse(msg.String()))
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.search.Blur()
		return nil
	case "esc":
		m.mode = modeNormal
		m.search.Reset()
		m.search.Blur()
		m.p.SetSearch("")
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.p.SetSearch(m.search.Value())
	return cmd
}

func (m *Model) openForm(f form.Model) tea.Cmd {
	m.form = f
	m.mode = modeForm
	m.footer.SetStatus("")
	return nil
}

// closeForm leaves the form. An edit form also closes its dialog.
func (m *Model) closeForm() {
	if m.form.Editing() {
		if d, ok := m.p.TopDialog(); ok && d.Kind == planner.DialogEdit {
			m.p.CloseDialog()
		}
	}
	m.mode = modeNormal
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil
	case "tab", "down":
		m.form.Next(1)
		return nil
	case "shift+tab", "up":
		m.form.Next(-1)
		return nil
	case "enter":
		m.saveForm()
		return nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) saveForm() {
	t, err := m.form.Task(m.p.Params().SelectedDate, m.p.Categories())
	if err != nil {
		m.footer.SetStatus(err.Error())
		return
	}
	if m.form.Editing() {
		if _, err := m.p.UpdateTask(t); err != nil {
			m.footer.SetStatus(err.Error())
			return
		}
	} else {
		added, err := m.p.AddTask(t)
		if err != nil {
			m.footer.SetStatus(err.Error())
			return
		}
		m.p.Select(added.ID)
	}
	m.closeForm()
}

// updateOptions moves through and applies the filter or sort menu. It
// reports whether the key was used.
func (m *Model) updateOptions(kind planner.DialogKind, msg tea.KeyMsg) bool {
	n := len(query.FilterOptions())
	if kind == planner.DialogSort {
		n = len(query.SortOptions())
	}
	params := m.p.Params()

	switch msg.String() {
	case "up":
		m.option = (m.option - 1 + n) % n
	case "down":
		m.option = (m.option + 1) % n
	case "d":
		if kind != planner.DialogSort {
			return false
		}
		m.p.SetSort(params.Sort, params.Direction.Toggle())
	case "enter":
		if kind == planner.DialogFilter {
			m.p.SetFilter(query.FilterOptions()[m.option])
		} else {
			m.p.SetSort(query.SortOptions()[m.option], params.Direction)
		}
		m.p.CloseDialog()
	default:
		return false
	}
	return true
}

func (m *Model) updateCommand(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeCommand()
		return nil
	case "enter":
		input := m.command.Value()
		m.closeCommand()
		return m.runCommand(input)
	case "tab":
		if s := m.footer.Suggestions(); len(s) > 0 {
			m.command.SetValue(s[0].Name + " ")
			m.command.CursorEnd()
		}
		return nil
	}
	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return cmd
}

func (m *Model) closeCommand() {
	m.mode = modeNormal
	m.command.Reset()
	m.command.Blur()
}

func (m *Model) shiftDay(delta int) {
	m.p.SetSelectedDate(m.p.Params().SelectedDate.AddDate(0, 0, delta))
}

// cycleCategory steps the category filter through "all" and each category.
func (m *Model) cycleCategory(delta int) {
	ids := []string{task.AllCategories}
	for _, c := range m.p.Categories() {
		ids = append(ids, c.ID)
	}
	i := max(slices.Index(ids, m.p.Params().ActiveCategory), 0)
	m.p.SetActiveCategory(ids[(i+delta+len(ids))%len(ids)])
}

func (m Model) defaultCategory() string {
	if active := m.p.Params().ActiveCategory; active != task.AllCategories {
		return active
	}
	if categories := m.p.Categories(); len(categories) > 0 {
		return categories[0].ID
	}
	return ""
}

// checkReminders raises a toast for each task coming due, once.
func (m *Model) checkReminders(now time.Time) {
	if !m.p.Preferences().NotificationsEnabled {
		return
	}
	tr := m.p.Translator()
	for _, r := range m.tracker.Fresh(reminder.Due(m.p.Tasks(), now, reminder.DefaultWindow)) {
		m.queue.push(planner.Toast{
			Title:       tr.T(i18n.Due) + ": " + r.Task.Title,
			Description: tr.Tf(i18n.DueIn, timeutil.FormatWindow(r.DueAt.Sub(now))),
			Variant:     planner.VariantDefault,
		})
	}
}
