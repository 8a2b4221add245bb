package task

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"
)

func fullTask() Task {
	t := New("Write report", "work", PriorityHigh, time.Date(2024, time.January, 10, 9, 30, 15, 120, time.Local))
	t.Description = Optional("quarterly numbers")
	t.Time = Optional("14:45")
	t.Tags = []string{"finance", "q1"}
	t.EstimatedMinutes = Optional(90)
	t.Attachment = Optional("https://example.com/report.pdf")
	return t
}

func TestTaskJSONRoundTrip(t *testing.T) {
	orig := fullTask()
	b, err := json.Marshal([]Task{orig})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"date":"2024-01-`) {
		t.Fatalf("expected ISO date in payload, got %s", b)
	}

	var got []Task
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	back := got[0]
	if !back.Date.Equal(orig.Date.Time) {
		t.Fatalf("date changed: %v != %v", back.Date, orig.Date)
	}
	if !back.Date.SameDay(orig.Date.Time) {
		t.Fatalf("calendar day changed")
	}
	back.Date = orig.Date
	if !reflect.DeepEqual(back, orig) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", back, orig)
	}
}

func TestTaskJSONOmitsAbsentFields(t *testing.T) {
	b, err := json.Marshal(New("plain", "work", PriorityLow, time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"description", "time", "tags", "estimatedMinutes", "attachment"} {
		if strings.Contains(string(b), `"`+field+`"`) {
			t.Errorf("expected %s to be omitted: %s", field, b)
		}
	}
}

func TestParseTimeAcceptsBrowserISO(t *testing.T) {
	got, err := ParseTime("2024-01-10T08:00:00.000Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	day, err := ParseTime("2024-01-11")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if day.Day() != 11 || day.Hour() != 0 {
		t.Fatalf("unexpected day parse %v", day)
	}
	if _, err := ParseTime("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	ts := At(time.Date(2024, time.January, 10, 0, 5, 0, 0, time.Local))
	if !ts.SameDay(time.Date(2024, time.January, 10, 23, 55, 0, 0, time.Local)) {
		t.Fatalf("expected same day")
	}
	if ts.SameDay(time.Date(2023, time.January, 10, 0, 5, 0, 0, time.Local)) {
		t.Fatalf("different year must not match")
	}
}

func TestValidate(t *testing.T) {
	ok := fullTask()
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		mutate func(*Task)
		want   error
	}{
		"blank title":      {func(t *Task) { t.Title = "   " }, ErrEmptyTitle},
		"missing category": {func(t *Task) { t.Category = "" }, ErrInvalid},
		"bad priority":     {func(t *Task) { t.Priority = "urgent" }, ErrInvalid},
		"bad clock":        {func(t *Task) { t.Time = Optional("25:99") }, ErrInvalid},
		"zero estimate":    {func(t *Task) { t.EstimatedMinutes = Optional(0) }, ErrInvalid},
		"empty tag":        {func(t *Task) { t.Tags = []string{"a", ""} }, ErrInvalid},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tk := fullTask()
			tc.mutate(&tk)
			if err := Validate(tk); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory(Category{ID: "x", Name: "X"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCategory(Category{ID: "x"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestDueAt(t *testing.T) {
	tk := New("call", "work", PriorityMedium, time.Date(2024, time.March, 3, 8, 0, 0, 0, time.Local))
	if _, ok := tk.DueAt(); ok {
		t.Fatalf("task without time has no due instant")
	}
	tk.Time = Optional("17:05")
	due, ok := tk.DueAt()
	if !ok {
		t.Fatalf("expected due instant")
	}
	want := time.Date(2024, time.March, 3, 17, 5, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, due)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := fullTask()
	c := orig.Clone()
	*c.Description = "changed"
	c.Tags[0] = "changed"
	if *orig.Description == "changed" || orig.Tags[0] == "changed" {
		t.Fatalf("clone shares memory with original")
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" HIGH ")
	if err != nil || p != PriorityHigh {
		t.Fatalf("expected high, got %q %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error")
	}
	if PriorityHigh.Rank() >= PriorityMedium.Rank() || PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Fatalf("rank order broken")
	}
}

func TestShare(t *testing.T) {
	tk := fullTask()
	cat := &Category{ID: "work", Name: "Work"}
	text := ShareText(tk, cat)
	want := "Write report - priority: high, category: Work, date: 2024-01-10 14:45"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}

	link, err := ShareLink(tk, cat)
	if err != nil {
		t.Fatalf("share link: %v", err)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(u.Query().Get("task")), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["title"] != "Write report" || payload["category"] != "Work" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestCategoryID(t *testing.T) {
	if got := CategoryID("  Side   Projects "); got != "side-projects" {
		t.Fatalf("unexpected id %q", got)
	}
}
