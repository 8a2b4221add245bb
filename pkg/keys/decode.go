package keys

import "strings"

// Event is a normalized key press. Key is lower-case for named keys ("up",
// "down", "space", "delete", "esc", "f1") and verbatim for printable runes.
type Event struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Alt   bool
	Shift bool
	// InTextInput is set when focus is inside an editable field.
	InTextInput bool
}

// Parse reads a key description such as "ctrl+down", "alt+/" or "E", the
// format terminal toolkits print for key messages.
func Parse(s string) Event {
	var ev Event
	if s == " " || s == "+" {
		return normalize(Event{Key: s})
	}
	parts := strings.Split(s, "+")
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl":
			ev.Ctrl = true
		case "alt", "option":
			ev.Alt = true
		case "shift":
			ev.Shift = true
		case "cmd", "meta", "super":
			ev.Meta = true
		}
	}
	ev.Key = parts[len(parts)-1]
	return normalize(ev)
}

func normalize(ev Event) Event {
	switch k := strings.ToLower(ev.Key); k {
	case " ", "space":
		ev.Key = "space"
	case "_":
		// Terminals report ctrl+/ as ctrl+_.
		if ev.Ctrl {
			ev.Key = "/"
		}
	case "up", "down", "delete", "esc", "escape", "f1", "enter", "tab", "backspace":
		if k == "escape" {
			k = "esc"
		}
		ev.Key = k
	}
	return ev
}

func isVertical(key string) bool {
	return key == "up" || key == "down"
}

// allowed applies the modifier gate: nothing fires in a text input, Alt
// only with "/", Ctrl/Cmd only with "/" and the arrows, Shift only with the
// arrows.
func allowed(ev Event) bool {
	switch {
	case ev.InTextInput:
		return false
	case ev.Alt && ev.Key != "/":
		return false
	case (ev.Ctrl || ev.Meta) && ev.Key != "/" && !isVertical(ev.Key):
		return false
	case ev.Shift && !isVertical(ev.Key):
		return false
	}
	return true
}

// Decode maps a key press to a Command, or None.
func Decode(ev Event) Command {
	if !allowed(ev) {
		return None
	}
	ctrl := ev.Ctrl || ev.Meta

	if ctrl {
		switch ev.Key {
		case "/":
			return ToggleTheme
		case "up":
			if !ev.Alt {
				return MoveUp
			}
		case "down":
			if !ev.Alt {
				return MoveDown
			}
		}
		return None
	}

	switch ev.Key {
	case "esc":
		return CloseDialog
	case "/":
		return FocusSearch
	case "?":
		return ShowShortcuts
	case "f1":
		return ShowOnboarding
	}

	if ev.Alt || ev.Shift {
		return None
	}

	switch ev.Key {
	case "up":
		return NavigateUp
	case "down":
		return NavigateDown
	case "space":
		return ToggleComplete
	case "delete":
		return Delete
	case "e", "E":
		return EditSelected
	case "n", "N":
		return FocusAddForm
	case "h", "H":
		return ToggleShowCompleted
	case "f", "F":
		return OpenFilter
	case "s", "S":
		return OpenSort
	case "1":
		return ViewTasks
	case "2":
		return ViewAnalytics
	case "3":
		return ViewCalendar
	}
	return None
}
