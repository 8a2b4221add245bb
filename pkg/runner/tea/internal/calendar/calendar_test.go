package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if lines[0] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	// March 2026 starts on a Sunday and needs five rows.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(strings.TrimLeft(lines[1], " "), "1  2  3") {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if Render(time.Time{}, nil, Options{}) != "" {
		t.Fatalf("expected empty render for zero month")
	}
}

func TestMonth(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	selected := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{today, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)}

	days := Month(month, today, selected, dates)
	if len(days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(days))
	}
	if !days[9].HasEntry || !days[9].IsToday {
		t.Fatalf("expected the 10th to be today with an entry: %+v", days[9])
	}
	if !days[11].IsSelected || days[11].HasEntry {
		t.Fatalf("unexpected 12th: %+v", days[11])
	}
	if days[0].HasEntry {
		t.Fatalf("expected April's task to be ignored")
	}
}
