// Package planner owns the planner's application state: the raw task and
// category collections, the view parameters, the cursor and the dialog
// stack. Front ends read snapshots and request changes through methods;
// nothing outside this package mutates the collections.
//
// A Planner is not safe for concurrent use. It is owned by one goroutine,
// such as the CLI command or the Bubble Tea update loop.
package planner

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tableflip.dev/planner/pkg/i18n"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// View is the top level screen.
type View string

const (
	ViewTasks     View = "tasks"
	ViewAnalytics View = "analytics"
	ViewCalendar  View = "calendar"
)

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are persisted settings that are not domain data.
type Preferences struct {
	Language             language.Tag
	NotificationsEnabled bool
	OnboardingComplete   bool
	LastVisit            time.Time
}

// Planner is the state container.
type Planner struct {
	kv     store.KV
	notify Notifier
	log    *zap.Logger
	now    func() time.Time
	tr     *i18n.Translator

	tasks      []task.Task
	categories []task.Category
	params     query.Params
	selected   string
	dialogs    []Dialog
	view       View
	theme      Theme
	prefs      Preferences

	welcomeBack bool
}

// Option configures a Planner.
type Option func(*Planner)

// WithStore persists state to kv. Without it state lives in memory only.
func WithStore(kv store.KV) Option {
	return func(p *Planner) {
		if kv != nil {
			p.kv = kv
		}
	}
}

// WithNotifier receives the toasts sent after mutations.
func WithNotifier(n Notifier) Option {
	return func(p *Planner) {
		if n != nil {
			p.notify = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// New returns a planner with default categories and parameters. Call Load
// to read persisted state.
func New(opts ...Option) *Planner {
	p := &Planner{
		kv:     store.NewMemory(nil),
		notify: discard{},
		log:    zap.NewNop(),
		now:    time.Now,
		view:   ViewTasks,
		theme:  ThemeLight,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.categories = task.DefaultCategories()
	p.params = query.DefaultParams(p.now())
	p.prefs.Language = i18n.English
	p.tr = i18n.New(i18n.English)
	return p
}

// Tasks returns a copy of the raw collection in manual order.
func (p *Planner) Tasks() []task.Task {
	return task.Clone(p.tasks)
}

// Task looks up one task by id.
func (p *Planner) Task(id string) (task.Task, bool) {
	i := task.IndexOf(p.tasks, id)
	if i < 0 {
		return task.Task{}, false
	}
	return p.tasks[i].Clone(), true
}

// Categories returns a copy of the category collection.
func (p *Planner) Categories() []task.Category {
	return append([]task.Category(nil), p.categories...)
}

// Category looks up a category by id.
func (p *Planner) Category(id string) (task.Category, bool) {
	return task.FindCategory(p.categories, id)
}

// Ordered is the displayed list: the raw collection filtered and sorted by
// the current parameters.
func (p *Planner) Ordered() []task.Task {
	return task.Clone(p.ordered())
}

func (p *Planner) ordered() []task.Task {
	return query.Apply(p.tasks, p.params, p.now())
}

// Params returns the current view parameters.
func (p *Planner) Params() query.Params {
	return p.params
}

func (p *Planner) View() View {
	return p.view
}

func (p *Planner) Theme() Theme {
	return p.theme
}

func (p *Planner) Preferences() Preferences {
	return p.prefs
}

// Translator renders messages in the preferred language.
func (p *Planner) Translator() *i18n.Translator {
	return p.tr
}

// WelcomeBack reports whether the previous visit recorded by Load was at
// least a day ago.
func (p *Planner) WelcomeBack() bool {
	return p.welcomeBack
}

// Now is the planner's clock.
func (p *Planner) Now() time.Time {
	return p.now()
}
