package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/planner/pkg/keys"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/runner/tea/internal/calendar"
	"tableflip.dev/planner/pkg/stats"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	dialogWidth   = 60
)

var tabs = []struct {
	view  planner.View
	label string
}{
	{planner.ViewTasks, "1 Tasks"},
	{planner.ViewAnalytics, "2 Analytics"},
	{planner.ViewCalendar, "3 Week"},
}

// View renders the header, the active screen or dialog, toasts and the
// footer.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := m.renderHeader(width)
	footer, footerHeight := m.footer.View()
	toasts := m.renderToasts(width)

	bodyHeight := height - lipgloss.Height(header) - footerHeight
	if toasts != "" {
		bodyHeight -= lipgloss.Height(toasts)
	}
	bodyHeight = max(bodyHeight, 3)

	var body string
	if overlay, ok := m.renderOverlay(width); ok {
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		switch m.p.View() {
		case planner.ViewAnalytics:
			body = m.renderAnalytics(width)
		case planner.ViewCalendar:
			body = m.renderCalendar(width)
		default:
			body = m.renderTasks(width, bodyHeight)
		}
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	parts := []string{header, body}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(width int) string {
	line := []string{m.theme.Title.Render("Planner"), " "}
	for _, t := range tabs {
		style := m.theme.Tab
		if t.view == m.p.View() {
			style = m.theme.TabOn
		}
		line = append(line, style.Render(t.label))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, line...)}

	params := m.p.Params()
	var summary []string
	if params.Filter == query.FilterAll {
		summary = append(summary, params.SelectedDate.Format("Monday, January 2"))
	} else {
		summary = append(summary, string(params.Filter))
	}
	summary = append(summary, m.categoryLabel(params.ActiveCategory))
	summary = append(summary, fmt.Sprintf("by %s %s", params.Sort, params.Direction))
	if !params.ShowCompleted {
		summary = append(summary, "completed hidden")
	}
	lines = append(lines, m.theme.Muted.Render(truncate.StringWithTail(strings.Join(summary, " · "), uint(width), "…")))

	switch {
	case m.mode == modeSearch:
		lines = append(lines, m.search.View())
	case params.Search != "":
		lines = append(lines, m.theme.Search.Render("/ "+params.Search))
	}
	return strings.Join(lines, "\n")
}

func (m Model) categoryLabel(id string) string {
	if id == task.AllCategories {
		return "All categories"
	}
	if c, ok := m.p.Category(id); ok {
		return c.Name
	}
	return id
}

func (m Model) renderTasks(width, height int) string {
	list := m.p.Ordered()
	if len(list) == 0 {
		return m.theme.Muted.Render("No tasks here. Press n to add one.")
	}

	selected, _ := m.p.SelectedID()
	start := 0
	if i := task.IndexOf(list, selected); i >= height {
		start = i - height + 1
	}
	end := min(len(list), start+height)

	rows := make([]string, 0, end-start)
	for _, t := range list[start:end] {
		rows = append(rows, m.renderTaskRow(t, t.ID == selected, width))
	}
	return strings.Join(rows, "\n")
}

func signifier(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "!"
	case task.PriorityLow:
		return "-"
	default:
		return "•"
	}
}

func (m Model) renderTaskRow(t task.Task, selected bool, width int) string {
	cursor := "  "
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	title := m.theme.Text.Render(t.Title)
	if t.Completed {
		title = m.theme.Done.Render(t.Title)
	}
	if selected {
		cursor = "› "
		title = m.theme.Selected.Render(t.Title)
	}

	row := cursor + check + " " + m.theme.Priority[t.Priority].Render(signifier(t.Priority)) + " " + title
	if c, ok := m.p.Category(t.Category); ok {
		row += " " + m.theme.Badge(c.Color).Render(c.Name)
	}
	if meta := m.taskMeta(t); meta != "" {
		row += "  " + m.theme.Muted.Render(meta)
	}
	return truncate.StringWithTail(row, uint(width), "…")
}

func (m Model) taskMeta(t task.Task) string {
	var meta []string
	if m.p.Params().Filter != query.FilterAll {
		meta = append(meta, t.Date.Day().Format("Jan 2"))
	}
	if t.Time != nil {
		meta = append(meta, *t.Time)
	}
	if t.EstimatedMinutes != nil {
		meta = append(meta, "~"+timeutil.FormatEstimate(*t.EstimatedMinutes))
	}
	for _, tag := range t.Tags {
		meta = append(meta, "#"+tag)
	}
	return strings.Join(meta, " ")
}

func (m Model) renderAnalytics(width int) string {
	tasks := m.p.Tasks()
	summary := stats.Summarize(tasks)

	left := []string{
		m.theme.Title.Render("Progress"),
		fmt.Sprintf("%-10s %d%%  %d of %d done", printers.Bar(summary.Completed, summary.Total), summary.Rate, summary.Completed, summary.Total),
		"",
		m.theme.Title.Render("This week"),
	}
	week := stats.Week(tasks, m.now())
	most := 0
	for _, d := range week {
		most = max(most, d.Total())
	}
	for _, d := range week {
		left = append(left, fmt.Sprintf("%s %-10s %d/%d", d.Date.Format("Mon"), printers.Bar(d.Total(), most), d.Completed, d.Total()))
	}

	right := []string{m.theme.Title.Render("By category")}
	right = append(right, m.countLines(stats.ByCategory(tasks), true)...)
	right = append(right, "", m.theme.Title.Render("By priority"))
	right = append(right, m.countLines(stats.ByPriority(tasks), false)...)

	l := strings.Join(left, "\n")
	r := strings.Join(right, "\n")
	if width < 2*dialogWidth {
		return l + "\n\n" + r
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(width/2).Render(l), r)
}

func (m Model) countLines(counts []stats.Count, categories bool) []string {
	most := 0
	for _, c := range counts {
		most = max(most, c.Value)
	}
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		name := c.Name
		if categories {
			name = m.categoryLabel(c.Name)
		}
		lines = append(lines, fmt.Sprintf("%-10s %-10s %d", truncate.String(name, 10), printers.Bar(c.Value, most), c.Value))
	}
	return lines
}

func (m Model) renderCalendar(width int) string {
	params := m.p.Params()
	selected := params.SelectedDate
	start := stats.WeekStart(selected)
	tasks := m.p.Tasks()

	var week []string
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		label := day.Format("Mon Jan 2")
		if sameDay(day, selected) {
			label = m.theme.TabOn.Render(label)
		} else {
			label = m.theme.Title.Render(label)
		}
		week = append(week, label)
		for _, t := range tasks {
			if !t.Date.SameDay(day) || (params.ActiveCategory != task.AllCategories && t.Category != params.ActiveCategory) {
				continue
			}
			line := "  " + signifier(t.Priority) + " " + t.Title
			if t.Completed {
				line = m.theme.Done.Render(line)
			}
			week = append(week, truncate.StringWithTail(line, uint(max(width/2, 20)), "…"))
		}
	}

	dates := make([]time.Time, 0, len(tasks))
	for _, t := range tasks {
		dates = append(dates, t.Date.Day())
	}
	month := calendar.Render(selected, calendar.Month(selected, m.now(), selected, dates), calendar.Options{
		HeaderStyle:   m.theme.Calendar.Header,
		EmptyStyle:    m.theme.Calendar.Empty,
		EntryStyle:    m.theme.Calendar.Entry,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		ShowHeader:    true,
	})
	month = m.theme.Title.Render(selected.Format("January 2006")) + "\n" + month

	w := strings.Join(week, "\n")
	if width < 2*dialogWidth {
		return month + "\n\n" + w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(width/2).Render(w), month)
}

func sameDay(a, b time.Time) bool {
	return task.At(a).SameDay(b)
}

func (m Model) renderOverlay(width int) (string, bool) {
	var title string
	var lines []string

	if m.mode == modeForm {
		title = "New task"
		if m.form.Editing() {
			title = "Edit task"
		}
		lines = m.form.Lines()
	} else {
		d, ok := m.p.TopDialog()
		if !ok {
			return "", false
		}
		switch d.Kind {
		case planner.DialogShortcuts, planner.DialogOnboarding:
			title = "Keyboard shortcuts"
			if d.Kind == planner.DialogOnboarding {
				title = "Welcome to Planner"
			}
			p := m.dialog
			p.SetContent(title, strings.Split(m.guide.View(), "\n"))
			view, _ := p.View()
			return view, true
		case planner.DialogFilter:
			title = "Filter"
			current := m.p.Params().Filter
			for i, f := range query.FilterOptions() {
				lines = append(lines, m.optionLine(i, string(f), f == current))
			}
		case planner.DialogSort:
			title = "Sort"
			current := m.p.Params().Sort
			for i, s := range query.SortOptions() {
				lines = append(lines, m.optionLine(i, string(s), s == current))
			}
			lines = append(lines, "", fmt.Sprintf("Direction: %s (d to flip)", m.p.Params().Direction))
		default:
			return "", false
		}
	}

	p := m.dialog
	p.SetWidth(min(dialogWidth, max(width-8, 20)))
	p.SetContent(title, lines)
	view, _ := p.View()
	return view, true
}

func (m Model) optionLine(i int, label string, current bool) string {
	marker := "  "
	if i == m.option {
		marker = "› "
	}
	if current {
		label += " ✓"
	}
	if i == m.option {
		return marker + m.theme.Selected.Render(label)
	}
	return marker + label
}

var extraBindings = []keys.Binding{
	{Keys: "←/→", Description: "Previous or next day"},
	{Keys: "tab", Description: "Next category"},
	{Keys: ":", Description: "Command palette"},
	{Keys: "q", Description: "Quit"},
}

func (m Model) renderToasts(width int) string {
	if len(m.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		text := t.Title
		if t.Description != "" {
			text += " · " + t.Description
		}
		style, ok := m.theme.Toast[t.Variant]
		if !ok {
			style = m.theme.Toast[planner.VariantDefault]
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(truncate.StringWithTail(text, uint(max(width-2, 10)), "…"))))
	}
	return strings.Join(lines, "\n")
}
