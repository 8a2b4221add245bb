package teaui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/runner/categories"
	"tableflip.dev/planner/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/planner/pkg/task"
)

func paletteCommands() []bottombar.CommandOption {
	return []bottombar.CommandOption{
		{Name: "quit", Description: "leave the planner"},
		{Name: "today", Description: "show today"},
		{Name: "date", Description: "show a day, e.g. date 2026-3-10 or date tomorrow"},
		{Name: "category", Description: "show one category, or all"},
		{Name: "filter", Description: "all, today, upcoming, completed or incomplete"},
		{Name: "sort", Description: "priority, date, alphabetical or category, then asc or desc"},
		{Name: "tomorrow", Description: "add a task for tomorrow"},
		{Name: "voice", Description: "add a task from a sentence"},
		{Name: "newcategory", Description: "add a category, e.g. newcategory Side Projects #0ea5e9"},
		{Name: "language", Description: "en, es, fr, de or hi"},
		{Name: "notifications", Description: "turn reminders on or off"},
		{Name: "theme", Description: "switch between dark and light"},
	}
}

// resolveCommand finds the palette entry named by word, accepting a
// unique prefix.
func resolveCommand(word string) (string, bool) {
	word = strings.ToLower(word)
	var match []string
	for _, c := range paletteCommands() {
		if c.Name == word {
			return c.Name, true
		}
		if strings.HasPrefix(c.Name, word) {
			match = append(match, c.Name)
		}
	}
	if len(match) == 1 {
		return match[0], true
	}
	return "", false
}

// runCommand executes a ":" command line. Failures are reported on the
// status line.
func (m *Model) runCommand(input string) tea.Cmd {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	name, ok := resolveCommand(fields[0])
	if !ok {
		m.footer.SetStatus(fmt.Sprintf("Unknown command: %s", fields[0]))
		return nil
	}
	args := fields[1:]
	rest := strings.Join(args, " ")
	m.log.Debug("command", zap.String("name", name), zap.Strings("args", args))

	var err error
	switch name {
	case "quit":
		return tea.Quit
	case "today":
		m.p.SetSelectedDate(m.now())
		m.p.SetFilter(query.FilterAll)
	case "date":
		on := options.OnOptions{OnString: rest}
		var day *time.Time
		if day, err = on.GetOn(m.now()); err == nil {
			if day == nil {
				err = fmt.Errorf("date needs a day")
			} else {
				m.p.SetSelectedDate(*day)
				m.p.SetFilter(query.FilterAll)
				m.footer.SetStatus(day.Format("Monday, January 2"))
			}
		}
	case "category":
		err = m.showCategory(rest)
	case "filter":
		var f query.FilterOption
		if f, err = query.ParseFilter(rest); err == nil {
			m.p.SetFilter(f)
		}
	case "sort":
		err = m.sortBy(args)
	case "tomorrow":
		_, err = m.p.AddTaskForTomorrow()
	case "voice":
		var t task.Task
		if t, err = m.p.AddFromVoice(rest); err == nil {
			m.p.Select(t.ID)
		}
	case "newcategory":
		err = m.addCategory(args)
	case "language":
		m.p.SetLanguage(rest)
		m.footer.SetStatus("Language: " + m.p.Translator().Language().String())
	case "notifications":
		switch strings.ToLower(rest) {
		case "on", "true", "yes":
			m.p.SetNotificationsEnabled(true)
		case "off", "false", "no":
			m.p.SetNotificationsEnabled(false)
		case "":
			m.p.SetNotificationsEnabled(!m.p.Preferences().NotificationsEnabled)
		default:
			err = fmt.Errorf("notifications takes on or off")
		}
	case "theme":
		m.p.ToggleTheme()
	}
	if err != nil {
		m.log.Warn("command failed", zap.String("name", name), zap.Error(err))
		m.footer.SetStatus("Error: " + err.Error())
	}
	return nil
}

func (m *Model) showCategory(name string) error {
	if name == "" || strings.EqualFold(name, task.AllCategories) {
		m.p.SetActiveCategory(task.AllCategories)
		return nil
	}
	id := task.CategoryID(name)
	if _, ok := m.p.Category(id); !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	m.p.SetActiveCategory(id)
	return nil
}

func (m *Model) sortBy(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sort needs a key")
	}
	by, err := query.ParseSort(args[0])
	if err != nil {
		return err
	}
	dir := m.p.Params().Direction
	if len(args) > 1 {
		if dir, err = query.ParseDirection(args[1]); err != nil {
			return err
		}
	}
	m.p.SetSort(by, dir)
	return nil
}

// addCategory takes a name with an optional trailing hex color.
func (m *Model) addCategory(args []string) error {
	var color string
	if n := len(args); n > 1 && strings.HasPrefix(args[n-1], "#") {
		color = args[n-1]
		args = args[:n-1]
	}
	runner := categories.Categories{
		Name:    strings.Join(args, " "),
		Color:   color,
		Planner: m.p,
		Out:     io.Discard,
	}
	if runner.Name == "" {
		return fmt.Errorf("newcategory needs a name")
	}
	if err := runner.Do(context.Background()); err != nil {
		return err
	}
	m.footer.SetStatus(m.p.Translator().T(i18n.CategoryAdded))
	return nil
}
