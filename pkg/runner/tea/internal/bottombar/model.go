// Package bottombar renders the planner's footer: contextual help, the
// status line and the ":" command palette.
package bottombar

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/planner/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeCommand
)

// CommandOption describes a command palette entry.
type CommandOption struct {
	Name        string
	Description string
}

// Model tracks footer/help/status rendering state.
type Model struct {
	mode            Mode
	helpLine        string
	statusLine      string
	commandInput    string
	commandView     string
	commandOptions  []CommandOption
	filteredOptions []CommandOption
	maxSuggestions  int
	width           int
	theme           theme.FooterTheme
}

// New returns a footer model with sensible defaults.
func New(th theme.FooterTheme) Model {
	return Model{
		mode:           ModeNormal,
		maxSuggestions: 6,
		theme:          th,
	}
}

// SetTheme swaps the footer styles.
func (m *Model) SetTheme(th theme.FooterTheme) {
	m.theme = th
}

// SetWidth truncates the status line to width columns. Zero disables it.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	if mode != ModeCommand {
		m.filteredOptions = nil
		m.commandInput = ""
		m.commandView = ""
	}
}

func (m Model) Mode() Mode {
	return m.mode
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

func (m Model) Status() string {
	return m.statusLine
}

// SetCommandDefinitions configures the available command palette entries.
func (m *Model) SetCommandDefinitions(cmds []CommandOption) {
	m.commandOptions = cmds
	m.filterSuggestions(m.commandInput)
}

// UpdateCommandInput refreshes the command palette filter and rendered line.
func (m *Model) UpdateCommandInput(value string, view string) {
	m.commandInput = value
	m.commandView = ":" + view
	m.filterSuggestions(value)
}

// Suggestions returns the palette entries matching the current input.
func (m Model) Suggestions() []CommandOption {
	return append([]CommandOption(nil), m.filteredOptions...)
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	switch m.mode {
	case ModeCommand:
		return min(len(m.filteredOptions), m.maxSuggestions) + 1
	default:
		return 1
	}
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	switch m.mode {
	case ModeCommand:
		return m.renderCommandMode()
	default:
		return m.renderStatusLine(), 1
	}
}

func (m Model) renderStatusLine() string {
	var segments []string
	if m.statusLine != "" {
		segments = append(segments, m.statusLine)
	}
	if m.helpLine != "" {
		segments = append(segments, m.helpLine)
	}
	if len(segments) == 0 {
		return " "
	}
	line := strings.Join(segments, " │ ")
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return m.theme.Status.Render(line)
}

func (m Model) renderCommandMode() (string, int) {
	var lines []string
	if len(m.filteredOptions) == 0 && m.statusLine != "" {
		lines = append(lines, m.theme.Status.Render(m.statusLine))
	} else {
		limit := min(m.maxSuggestions, len(m.filteredOptions))
		for i := 0; i < limit; i++ {
			opt := m.filteredOptions[i]
			nameStyle, descStyle := m.theme.CommandName, m.theme.CommandDescription
			if i == 0 && m.commandInput != "" {
				nameStyle, descStyle = m.theme.CommandSelectedName, m.theme.CommandSelectedDesc
			}
			name := nameStyle.Render(":" + opt.Name)
			if opt.Description == "" {
				lines = append(lines, name)
			} else {
				lines = append(lines, fmt.Sprintf("%s  %s", name, descStyle.Render(opt.Description)))
			}
		}
	}
	commandLine := m.commandView
	if commandLine == "" {
		commandLine = ":"
	}
	lines = append(lines, commandLine)
	return strings.Join(lines, "\n"), len(lines)
}

func (m *Model) filterSuggestions(input string) {
	if m.mode != ModeCommand {
		m.filteredOptions = nil
		return
	}
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		m.filteredOptions = append([]CommandOption(nil), m.commandOptions...)
		return
	}
	prefix := fields[0]
	m.filteredOptions = m.filteredOptions[:0]
	for _, opt := range m.commandOptions {
		if strings.HasPrefix(strings.ToLower(opt.Name), prefix) {
			m.filteredOptions = append(m.filteredOptions, opt)
		}
	}
}
