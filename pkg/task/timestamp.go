package task

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutDay = "2006-01-02"

// ParseTime accepts RFC3339 timestamps (with or without fractional seconds)
// and bare calendar days.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutDay, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("task: parse time %q: %w", v, err)
	}
	return t, nil
}

// Timestamp is the instant a task is scheduled for. Equality checks in the
// query engine use calendar-day granularity in the local zone.
type Timestamp struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) SameDay(then time.Time) bool {
	a := t.Local()
	b := then.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Day returns local midnight of the timestamp's calendar day.
func (t Timestamp) Day() time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
