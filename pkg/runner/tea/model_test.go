package teaui

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/runner/tea/internal/form"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

type fixture struct {
	m  Model
	p  *planner.Planner
	kv *store.Memory
}

func newFixture(t *testing.T, seed map[string]string, titles ...string) *fixture {
	t.Helper()
	if seed == nil {
		seed = map[string]string{store.KeyOnboardingComplete: "true"}
	}
	kv := store.NewMemory(seed)
	queue := &toastQueue{}
	p := planner.New(
		planner.WithStore(kv),
		planner.WithNotifier(planner.NotifierFunc(queue.push)),
		planner.WithClock(func() time.Time { return testNow }),
	)
	p.Load()

	priorities := task.Priorities()
	for i, title := range titles {
		if _, err := p.AddTask(task.New(title, "work", priorities[i%len(priorities)], testNow)); err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}
	return &fixture{m: New(p, queue, nil, nil), p: p, kv: kv}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+up":
		return tea.KeyMsg{Type: tea.KeyCtrlUp}
	case "ctrl+down":
		return tea.KeyMsg{Type: tea.KeyCtrlDown}
	case "ctrl+/":
		return tea.KeyMsg{Type: tea.KeyCtrlUnderscore}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.m.Update(msg)
	f.m = next.(Model)
	return cmd
}

func (f *fixture) press(keys ...string) {
	for _, k := range keys {
		f.send(keyMsg(k))
	}
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// quits reports whether cmd, or any command it batches, quits.
func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func (f *fixture) selectedTitle(t *testing.T) string {
	t.Helper()
	id, ok := f.p.SelectedID()
	if !ok {
		return ""
	}
	got, ok := f.p.Task(id)
	if !ok {
		t.Fatalf("selected task %s missing", id)
	}
	return got.Title
}

func (f *fixture) toastTitles() []string {
	var out []string
	for _, t := range f.m.toasts {
		out = append(out, t.Title)
	}
	return out
}

func TestNavigateAndToggle(t *testing.T) {
	f := newFixture(t, nil, "Alpha", "Bravo", "Charlie")

	f.press("down")
	if got := f.selectedTitle(t); got != "Alpha" {
		t.Fatalf("expected first task selected, got %q", got)
	}
	f.press("down", "down", "down")
	if got := f.selectedTitle(t); got != "Charlie" {
		t.Fatalf("expected cursor to stop at the last task, got %q", got)
	}
	f.press("up", "space")
	id, _ := f.p.SelectedID()
	if got, _ := f.p.Task(id); !got.Completed || got.Title != "Bravo" {
		t.Fatalf("expected Bravo completed, got %+v", got)
	}
	titles := f.toastTitles()
	if len(titles) == 0 || titles[len(titles)-1] != "Task completed" {
		t.Fatalf("expected completion toast, got %v", titles)
	}
}

func TestDeleteAndReorder(t *testing.T) {
	f := newFixture(t, nil, "Alpha", "Bravo", "Charlie")
	f.p.SetSort(query.SortAlphabetical, query.Asc)

	f.press("down", "ctrl+down")
	var order []string
	for _, tk := range f.p.Tasks() {
		order = append(order, tk.Title)
	}
	if strings.Join(order, ",") != "Bravo,Alpha,Charlie" {
		t.Fatalf("unexpected raw order %v", order)
	}

	f.press("delete")
	if _, ok := f.p.SelectedID(); ok {
		t.Fatalf("expected cursor cleared after delete")
	}
	if n := len(f.p.Tasks()); n != 2 {
		t.Fatalf("expected 2 tasks left, got %d", n)
	}
}

func TestDialogsAreModal(t *testing.T) {
	f := newFixture(t, nil, "Alpha", "Bravo")

	f.press("?")
	if d, ok := f.p.TopDialog(); !ok || d.Kind != planner.DialogShortcuts {
		t.Fatalf("expected shortcuts dialog, got %+v", d)
	}
	if view := f.m.View(); !strings.Contains(view, "Keyboard shortcuts") {
		t.Fatalf("expected shortcuts in view:\n%s", view)
	}
	f.press("down", "q")
	if _, ok := f.p.SelectedID(); ok {
		t.Fatalf("expected navigation ignored while a dialog is open")
	}
	if f.m.guide.AtTop() {
		t.Fatalf("expected down to scroll the shortcuts")
	}
	f.press("esc")
	if _, ok := f.p.TopDialog(); ok {
		t.Fatalf("expected dialog closed")
	}
}

func TestOnboardingOnFirstRun(t *testing.T) {
	f := newFixture(t, map[string]string{})

	if d, ok := f.p.TopDialog(); !ok || d.Kind != planner.DialogOnboarding {
		t.Fatalf("expected onboarding dialog")
	}
	if view := f.m.View(); !strings.Contains(view, "Welcome to Planner") {
		t.Fatalf("expected onboarding in view:\n%s", view)
	}
	f.press("esc")
	if !f.p.Preferences().OnboardingComplete {
		t.Fatalf("expected onboarding completed on close")
	}
	if raw, _ := f.kv.Get(store.KeyOnboardingComplete); string(raw) != "true" {
		t.Fatalf("expected onboarding persisted, got %q", raw)
	}
}

func TestFilterDialog(t *testing.T) {
	f := newFixture(t, nil, "Alpha")

	f.press("f")
	if f.m.option != 0 {
		t.Fatalf("expected menu on current filter, got %d", f.m.option)
	}
	f.press("down", "down", "down", "enter")
	if got := f.p.Params().Filter; got != query.FilterCompleted {
		t.Fatalf("expected completed filter, got %s", got)
	}
	if _, ok := f.p.TopDialog(); ok {
		t.Fatalf("expected dialog closed after choosing")
	}
}

func TestSortDialog(t *testing.T) {
	f := newFixture(t, nil, "Alpha")

	f.press("s", "d", "up", "enter")
	params := f.p.Params()
	if params.Sort != query.SortCategory || params.Direction != query.Desc {
		t.Fatalf("expected category desc, got %s %s", params.Sort, params.Direction)
	}
}

func TestSearchIsLive(t *testing.T) {
	f := newFixture(t, nil, "Write report", "Call mom")

	f.press("/")
	if f.m.mode != modeSearch {
		t.Fatalf("expected search mode")
	}
	f.typeText("rep")
	if got := f.p.Params().Search; got != "rep" {
		t.Fatalf("expected search %q, got %q", "rep", got)
	}
	if list := f.p.Ordered(); len(list) != 1 || list[0].Title != "Write report" {
		t.Fatalf("expected one match, got %v", list)
	}
	f.press("enter")
	if f.m.mode != modeNormal || f.p.Params().Search != "rep" {
		t.Fatalf("expected search kept after enter")
	}
	f.press("/", "esc")
	if f.p.Params().Search != "" {
		t.Fatalf("expected search cleared by esc")
	}
}

func TestAddForm(t *testing.T) {
	f := newFixture(t, nil)

	f.press("n")
	if f.m.mode != modeForm || f.m.form.Editing() {
		t.Fatalf("expected add form")
	}
	f.typeText("Buy milk")
	f.press("enter")

	tasks := f.p.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" || tasks[0].Category != "work" {
		t.Fatalf("unexpected tasks %+v", tasks)
	}
	if !tasks[0].Date.SameDay(testNow) {
		t.Fatalf("expected task on the selected date")
	}
	if f.m.mode != modeNormal {
		t.Fatalf("expected form closed")
	}
	if got := f.selectedTitle(t); got != "Buy milk" {
		t.Fatalf("expected new task selected, got %q", got)
	}
}

func TestAddFormRejectsEmptyTitle(t *testing.T) {
	f := newFixture(t, nil)

	f.press("n", "enter")
	if f.m.mode != modeForm {
		t.Fatalf("expected form to stay open")
	}
	if f.m.footer.Status() == "" {
		t.Fatalf("expected an error on the status line")
	}
	f.press("esc")
	if f.m.mode != modeNormal || len(f.p.Tasks()) != 0 {
		t.Fatalf("expected cancelled form")
	}
}

func TestEditDialog(t *testing.T) {
	f := newFixture(t, nil, "Alpha")

	f.press("down", "e")
	if d, ok := f.p.TopDialog(); !ok || d.Kind != planner.DialogEdit {
		t.Fatalf("expected edit dialog")
	}
	if f.m.mode != modeForm || !f.m.form.Editing() {
		t.Fatalf("expected edit form")
	}
	f.m.form.SetValue(form.FieldTitle, "Renamed")
	f.press("enter")

	if got := f.selectedTitle(t); got != "Renamed" {
		t.Fatalf("expected renamed task, got %q", got)
	}
	if _, ok := f.p.TopDialog(); ok {
		t.Fatalf("expected edit dialog closed")
	}
}

func TestCommandPalette(t *testing.T) {
	f := newFixture(t, nil, "Alpha")

	f.press(":")
	f.typeText("filter today")
	if s := f.m.footer.Suggestions(); len(s) != 1 || s[0].Name != "filter" {
		t.Fatalf("expected filter suggestion, got %+v", s)
	}
	f.press("enter")
	if f.p.Params().Filter != query.FilterToday {
		t.Fatalf("expected today filter")
	}

	f.press(":")
	f.typeText("newcat Side Projects #0ea5e9")
	f.press("enter")
	if c, ok := f.p.Category("side-projects"); !ok || c.Color != "#0ea5e9" {
		t.Fatalf("expected category added, got %+v", c)
	}

	f.press(":")
	f.typeText("bogus")
	f.press("enter")
	if !strings.Contains(f.m.footer.Status(), "Unknown command") {
		t.Fatalf("expected unknown command status, got %q", f.m.footer.Status())
	}

	f.press(":")
	f.typeText("q")
	if !quits(f.send(keyMsg("enter"))) {
		t.Fatalf("expected quit command")
	}
}

func TestPaletteVoiceAndLanguage(t *testing.T) {
	f := newFixture(t, nil)

	f.press(":")
	f.typeText("voice call the dentist important health")
	f.press("enter")
	tasks := f.p.Tasks()
	if len(tasks) != 1 || tasks[0].Priority != task.PriorityHigh || tasks[0].Category != "health" {
		t.Fatalf("unexpected voice task %+v", tasks)
	}

	f.press(":")
	f.typeText("language es")
	f.press("enter")
	if got := f.p.Translator().Language().String(); got != "es" {
		t.Fatalf("expected spanish, got %s", got)
	}
}

func TestDayAndCategoryKeys(t *testing.T) {
	f := newFixture(t, nil)

	f.press("right", "right", "left")
	if got := f.p.Params().SelectedDate; !task.At(got).SameDay(testNow.AddDate(0, 0, 1)) {
		t.Fatalf("expected the next day, got %s", got)
	}
	f.press("tab")
	if got := f.p.Params().ActiveCategory; got != "work" {
		t.Fatalf("expected first category, got %s", got)
	}
	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := f.p.Params().ActiveCategory; got != "errands" {
		t.Fatalf("expected wrap to last category, got %s", got)
	}
}

func TestToggleThemeRestyles(t *testing.T) {
	f := newFixture(t, nil)

	f.press("ctrl+/")
	if f.p.Theme() != planner.ThemeDark || !f.m.theme.Dark {
		t.Fatalf("expected dark theme applied")
	}
}

func TestReminderTick(t *testing.T) {
	seed := map[string]string{
		store.KeyOnboardingComplete:   "true",
		store.KeyNotificationsEnabled: "true",
	}
	f := newFixture(t, seed)
	due := task.New("Standup", "work", task.PriorityHigh, testNow)
	due.Time = task.Optional("09:03")
	if _, err := f.p.AddTask(due); err != nil {
		t.Fatalf("add: %v", err)
	}

	f.send(reminderTickMsg(testNow))
	f.send(reminderTickMsg(testNow.Add(time.Minute)))

	var reminders []string
	for _, title := range f.toastTitles() {
		if strings.Contains(title, "Standup") {
			reminders = append(reminders, title)
		}
	}
	if len(reminders) != 1 || reminders[0] != "Due: Standup" {
		t.Fatalf("expected one reminder, got %v", reminders)
	}
}

func TestReminderToastIsTranslated(t *testing.T) {
	seed := map[string]string{
		store.KeyOnboardingComplete:   "true",
		store.KeyNotificationsEnabled: "true",
		store.KeyLanguage:             "es",
	}
	f := newFixture(t, seed)
	due := task.New("Standup", "work", task.PriorityHigh, testNow)
	due.Time = task.Optional("09:03")
	if _, err := f.p.AddTask(due); err != nil {
		t.Fatalf("add: %v", err)
	}

	f.send(reminderTickMsg(testNow))
	for _, toast := range f.m.toasts {
		if toast.Title == "Vence: Standup" {
			if toast.Description != "en 3m" {
				t.Fatalf("expected translated description, got %q", toast.Description)
			}
			return
		}
	}
	t.Fatalf("no reminder toast in %v", f.toastTitles())
}

func TestToastsExpire(t *testing.T) {
	f := newFixture(t, nil, "Alpha")
	if len(f.m.toasts) == 0 {
		t.Fatalf("expected add toast")
	}
	f.m.now = func() time.Time { return testNow.Add(time.Minute) }
	f.send(toastExpireMsg{})
	if len(f.m.toasts) != 0 {
		t.Fatalf("expected toasts expired, got %v", f.toastTitles())
	}
}

func TestStoreChangedReloads(t *testing.T) {
	f := newFixture(t, nil, "Alpha")

	raw, err := json.Marshal([]task.Task{task.New("From elsewhere", "work", task.PriorityLow, testNow)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := f.kv.Set(store.KeyTasks, raw); err != nil {
		t.Fatalf("set: %v", err)
	}
	f.send(storeChangedMsg{key: store.KeyTasks})

	tasks := f.p.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "From elsewhere" {
		t.Fatalf("expected reloaded tasks, got %+v", tasks)
	}
}

func TestWaitForStore(t *testing.T) {
	events := make(chan store.Event, 1)
	f := newFixture(t, nil)
	f.m.events = events

	events <- store.Event{Key: store.KeyTasks}
	msg := f.m.waitForStore()()
	if got, ok := msg.(storeChangedMsg); !ok || got.key != store.KeyTasks {
		t.Fatalf("expected store change, got %#v", msg)
	}
	close(events)
	if msg := f.m.waitForStore()(); msg != nil {
		t.Fatalf("expected nil after close, got %#v", msg)
	}
}

func TestCtrlCQuits(t *testing.T) {
	f := newFixture(t, nil)
	f.press("n")
	if !quits(f.send(keyMsg("ctrl+c"))) {
		t.Fatalf("expected quit")
	}
}

func TestNotifierBeforePlanner(t *testing.T) {
	var ui UI
	ui.Notifier().Notify(planner.Toast{Title: "Welcome back!"})
	if n := len(ui.toasts.pending); n != 1 {
		t.Fatalf("expected queued toast, got %d", n)
	}
}
