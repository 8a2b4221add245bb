// Package guide renders markdown help inside a scrollable viewport.
package guide

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/planner/pkg/keys"
)

//go:embed welcome.md
var welcomeMarkdown string

// Welcome is the onboarding tour.
func Welcome() string {
	return welcomeMarkdown
}

// Shortcuts renders the key bindings, plus extra rows, as a markdown table.
func Shortcuts(extra ...keys.Binding) string {
	var b strings.Builder
	b.WriteString("| Key | Action |\n| --- | --- |\n")
	for _, k := range append(keys.Bindings(), extra...) {
		fmt.Fprintf(&b, "| `%s` | %s |\n", k.Keys, k.Description)
	}
	return b.String()
}

// Model shows one markdown document.
type Model struct {
	viewport viewport.Model
	markdown string
	style    string
	width    int
	err      error
}

// New returns an empty guide. style is a glamour standard style such as
// "dark" or "light".
func New(style string) *Model {
	return &Model{
		viewport: viewport.New(1, 1),
		style:    style,
	}
}

// SetContent replaces the document and scrolls to the top.
func (m *Model) SetContent(markdown string) {
	if m.markdown == markdown {
		return
	}
	m.markdown = markdown
	m.render()
	m.viewport.GotoTop()
}

// SetStyle switches the glamour style.
func (m *Model) SetStyle(style string) {
	if m.style == style {
		return
	}
	m.style = style
	m.render()
}

// SetSize sizes the viewport and rewraps the document to width.
func (m *Model) SetSize(width, height int) {
	width = max(width, 10)
	m.viewport.Height = max(height, 1)
	if m.width == width {
		return
	}
	m.width = width
	m.viewport.Width = width
	m.render()
}

func (m *Model) render() {
	if m.markdown == "" {
		m.viewport.SetContent("")
		return
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithColorProfile(lipgloss.ColorProfile()),
		glamour.WithWordWrap(max(m.width-2, 10)),
	)
	if err == nil {
		var content string
		if content, err = renderer.Render(strings.TrimSpace(m.markdown)); err == nil {
			m.err = nil
			m.viewport.SetContent(strings.Trim(content, "\n"))
			return
		}
	}
	m.err = err
	m.viewport.SetContent(m.markdown)
}

// Err reports the last rendering failure. The raw markdown is shown then.
func (m *Model) Err() error {
	return m.err
}

// Update forwards scrolling keys to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) AtTop() bool {
	return m.viewport.AtTop()
}

func (m *Model) View() string {
	return m.viewport.View()
}
