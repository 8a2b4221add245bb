// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/task"
)

// Theme groups the styles for one color scheme.
type Theme struct {
	Dark bool

	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Muted    lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Search   lipgloss.Style

	Priority map[task.Priority]lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	Toast map[planner.Variant]lipgloss.Style

	Footer FooterTheme

	Calendar CalendarTheme
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help                lipgloss.Style
	Status              lipgloss.Style
	CommandName         lipgloss.Style
	CommandDescription  lipgloss.Style
	CommandSelectedName lipgloss.Style
	CommandSelectedDesc lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

type palette struct {
	fg, muted, accent, surface, selected string
}

var (
	light = palette{fg: "#1f2937", muted: "#6b7280", accent: "#4f46e5", surface: "#f3f4f6", selected: "#e0e7ff"}
	dark  = palette{fg: "#e5e7eb", muted: "#9ca3af", accent: "#818cf8", surface: "#1f2937", selected: "#312e81"}
)

// For returns the styles for a planner theme.
func For(t planner.Theme) Theme {
	p := light
	if t == planner.ThemeDark {
		p = dark
	}

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
	commandName := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.accent)).
		Bold(true)

	return Theme{
		Dark:     t == planner.ThemeDark,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		Tab:      muted.Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg)).Background(lipgloss.Color(p.selected)).Bold(true).Padding(0, 1),
		Muted:    muted,
		Text:     text,
		Selected: lipgloss.NewStyle().Background(lipgloss.Color(p.selected)).Bold(true),
		Done:     muted.Strikethrough(true),
		Search:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),
		Priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
			task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
			task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		},
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Toast: map[planner.Variant]lipgloss.Style{
			planner.VariantDefault:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg)).Background(lipgloss.Color(p.surface)).Padding(0, 1),
			planner.VariantSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#15803d")).Padding(0, 1),
			planner.VariantDestructive: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#b91c1c")).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:                muted,
			Status:              muted,
			CommandName:         commandName,
			CommandDescription:  muted,
			CommandSelectedName: commandName.Reverse(true),
			CommandSelectedDesc: muted.Reverse(true),
		},
		Calendar: CalendarTheme{
			Header:   muted,
			Empty:    muted,
			Entry:    text.Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color(p.selected)),
		},
	}
}

// Badge styles a category label with its color, blended toward the
// background so it stays readable in both schemes.
func (t Theme) Badge(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		return t.Muted
	}
	bg, _ := colorful.Hex(light.surface)
	if t.Dark {
		bg, _ = colorful.Hex(dark.surface)
	}
	fill := c.BlendLab(bg, 0.55).Clamped()
	fg := "#111827"
	if l, _, _ := fill.Lab(); l < 0.6 {
		fg = "#f9fafb"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(fill.Hex())).
		Padding(0, 1)
}
