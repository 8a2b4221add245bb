package teaui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/reminder"
	"tableflip.dev/planner/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/planner/pkg/runner/tea/internal/form"
	"tableflip.dev/planner/pkg/runner/tea/internal/guide"
	"tableflip.dev/planner/pkg/runner/tea/internal/panel"
	"tableflip.dev/planner/pkg/runner/tea/internal/theme"
	"tableflip.dev/planner/pkg/store"
)

const (
	toastTTL      = 3 * time.Second
	maxToasts     = 3
	reminderEvery = time.Minute
	expireEvery   = time.Second
	// guideChrome is the header, footer and dialog title around a guide.
	guideChrome = 6
)

// mode is the component holding keyboard focus.
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeForm
	modeCommand
)

// toastQueue buffers toasts raised by the planner until the model shows
// them. It is only touched from the Bubble Tea update loop.
type toastQueue struct {
	pending []planner.Toast
}

func (q *toastQueue) push(t planner.Toast) {
	q.pending = append(q.pending, t)
}

func (q *toastQueue) drain() []planner.Toast {
	out := q.pending
	q.pending = nil
	return out
}

type activeToast struct {
	planner.Toast
	until time.Time
}

// messages
type storeChangedMsg struct{ key string }
type toastExpireMsg struct{}
type reminderTickMsg time.Time

// Model is the Bubble Tea model wrapping a planner.
type Model struct {
	p       *planner.Planner
	log     *zap.Logger
	queue   *toastQueue
	events  <-chan store.Event
	tracker *reminder.Tracker
	now     func() time.Time

	themeName planner.Theme
	theme     theme.Theme
	footer    bottombar.Model
	dialog    panel.Model
	guide     *guide.Model
	guideFor  planner.DialogKind
	help      help.Model
	keys      keyMap

	mode    mode
	search  textinput.Model
	command textinput.Model
	form    form.Model
	option  int
	toasts  []activeToast

	width  int
	height int
}

// New builds the model. events may be nil when the store is not watched.
func New(p *planner.Planner, queue *toastQueue, events <-chan store.Event, log *zap.Logger) Model {
	if queue == nil {
		queue = &toastQueue{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles"
	search.CharLimit = 128

	command := textinput.New()
	command.Prompt = ""
	command.CharLimit = 256

	m := Model{
		p:       p,
		log:     log,
		queue:   queue,
		events:  events,
		tracker: reminder.NewTracker(),
		now:     p.Now,
		footer:  bottombar.New(theme.FooterTheme{}),
		guide:   guide.New(string(p.Theme())),
		help:    help.New(),
		keys:    newKeyMap(),
		search:  search,
		command: command,
	}
	m.applyTheme()
	m.footer.SetCommandDefinitions(paletteCommands())
	m.pullToasts()
	m.syncGuide()
	return m
}

// Init starts the store watcher and the reminder clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.waitForStore(),
		func() tea.Msg { return reminderTickMsg(m.now()) },
		expireToasts(),
	)
}

func (m Model) waitForStore() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{key: ev.Key}
	}
}

func nextReminderTick() tea.Cmd {
	return tea.Tick(reminderEvery, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

func expireToasts() tea.Cmd {
	return tea.Tick(expireEvery, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

// applyTheme rebuilds the styles for the planner theme.
func (m *Model) applyTheme() {
	m.themeName = m.p.Theme()
	m.theme = theme.For(m.themeName)
	m.footer.SetTheme(m.theme.Footer)
	m.dialog = panel.New(m.theme.Dialog, m.theme.DialogTitle)
	m.guide.SetStyle(string(m.themeName))
	m.search.PromptStyle = m.theme.Search
	m.help.Styles.ShortKey = m.theme.Text
	m.help.Styles.ShortDesc = m.theme.Muted
	m.help.Styles.ShortSeparator = m.theme.Muted
}

func (m *Model) syncTheme() {
	if m.p.Theme() != m.themeName {
		m.applyTheme()
	}
}

// syncGuide loads the markdown for an open shortcuts or onboarding dialog
// and sizes it to the screen.
func (m *Model) syncGuide() {
	d, ok := m.p.TopDialog()
	if !ok || (d.Kind != planner.DialogShortcuts && d.Kind != planner.DialogOnboarding) {
		m.guideFor = ""
		return
	}
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	frameX := m.theme.Dialog.GetHorizontalFrameSize()
	frameY := m.theme.Dialog.GetVerticalFrameSize()
	m.guide.SetSize(min(dialogWidth, width-8)-frameX, height-guideChrome-frameY)

	if m.guideFor == d.Kind {
		return
	}
	m.guideFor = d.Kind
	if d.Kind == planner.DialogOnboarding {
		m.guide.SetContent(guide.Welcome())
	} else {
		m.guide.SetContent(guide.Shortcuts(extraBindings...))
	}
}

// pullToasts moves queued toasts on screen, keeping the newest few.
func (m *Model) pullToasts() bool {
	fresh := m.queue.drain()
	if len(fresh) == 0 {
		return false
	}
	until := m.now().Add(toastTTL)
	for _, t := range fresh {
		m.toasts = append(m.toasts, activeToast{Toast: t, until: until})
	}
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	return true
}

func (m *Model) dropExpiredToasts() {
	now := m.now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.until.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// keyMap feeds the footer help line.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Search  key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Day     key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding

	Next   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Choose key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Add:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Day:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Save:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Edit, k.Search, k.Filter, k.Sort, k.Day, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Next, k.Save, k.Cancel, k.Choose}}
}

// helpFor returns the bindings relevant to the focused component.
func (m Model) helpFor() []key.Binding {
	switch m.mode {
	case modeForm:
		return []key.Binding{m.keys.Next, m.keys.Save, m.keys.Cancel}
	case modeSearch, modeCommand:
		return []key.Binding{m.keys.Save, m.keys.Cancel}
	}
	if d, ok := m.p.TopDialog(); ok {
		if d.Kind == planner.DialogFilter || d.Kind == planner.DialogSort {
			return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Cancel}
		}
		return []key.Binding{m.keys.Cancel}
	}
	return m.keys.ShortHelp()
}
