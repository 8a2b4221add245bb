// Package keys turns raw key presses into the planner's closed set of
// commands. Decoding happens in exactly one place so the whole command set
// can be tested without a terminal.
package keys

// Command is a user intent produced from a key press.
type Command int

const (
	None Command = iota
	NavigateUp
	NavigateDown
	MoveUp
	MoveDown
	ToggleComplete
	Delete
	EditSelected
	CloseDialog
	ShowShortcuts
	FocusSearch
	ToggleTheme
	ShowOnboarding
	ViewTasks
	ViewAnalytics
	ViewCalendar
	FocusAddForm
	ToggleShowCompleted
	OpenFilter
	OpenSort
)

var commandNames = map[Command]string{
	None:                "none",
	NavigateUp:          "navigate-up",
	NavigateDown:        "navigate-down",
	MoveUp:              "move-up",
	MoveDown:            "move-down",
	ToggleComplete:      "toggle-complete",
	Delete:              "delete",
	EditSelected:        "edit",
	CloseDialog:         "close-dialog",
	ShowShortcuts:       "shortcuts",
	FocusSearch:         "search",
	ToggleTheme:         "toggle-theme",
	ShowOnboarding:      "onboarding",
	ViewTasks:           "view-tasks",
	ViewAnalytics:       "view-analytics",
	ViewCalendar:        "view-calendar",
	FocusAddForm:        "add",
	ToggleShowCompleted: "toggle-completed",
	OpenFilter:          "filter",
	OpenSort:            "sort",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// Binding documents one shortcut for help screens.
type Binding struct {
	Keys        string
	Command     Command
	Description string
}

// Bindings lists every shortcut Decode understands, in help order.
func Bindings() []Binding {
	return []Binding{
		{"down", NavigateDown, "Select next task"},
		{"up", NavigateUp, "Select previous task"},
		{"ctrl+down", MoveDown, "Move selected task down"},
		{"ctrl+up", MoveUp, "Move selected task up"},
		{"space", ToggleComplete, "Toggle completion of selected task"},
		{"delete", Delete, "Delete selected task"},
		{"e", EditSelected, "Edit selected task"},
		{"n", FocusAddForm, "New task"},
		{"/", FocusSearch, "Search"},
		{"f", OpenFilter, "Choose filter"},
		{"s", OpenSort, "Choose sort"},
		{"h", ToggleShowCompleted, "Show or hide completed tasks"},
		{"1", ViewTasks, "Tasks view"},
		{"2", ViewAnalytics, "Analytics view"},
		{"3", ViewCalendar, "Week view"},
		{"ctrl+/", ToggleTheme, "Toggle dark and light theme"},
		{"?", ShowShortcuts, "Keyboard shortcuts"},
		{"f1", ShowOnboarding, "Welcome tour"},
		{"esc", CloseDialog, "Close dialog"},
	}
}
