package task

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const shareBase = "https://daily-planner.app/share"

// ShareText renders a one-line summary of a task suitable for pasting.
func ShareText(t Task, category *Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - priority: %s", t.Title, t.Priority)
	if category != nil {
		fmt.Fprintf(&b, ", category: %s", category.Name)
	}
	if !t.Date.IsZero() {
		fmt.Fprintf(&b, ", date: %s", t.Date.Local().Format(layoutDay))
	}
	if t.Time != nil {
		fmt.Fprintf(&b, " %s", *t.Time)
	}
	return b.String()
}

type sharePayload struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category,omitempty"`
	Date        Timestamp `json:"date"`
	Time        *string   `json:"time,omitempty"`
}

// ShareLink encodes the task's public fields into a share URL.
func ShareLink(t Task, category *Category) (string, error) {
	p := sharePayload{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Date:        t.Date,
		Time:        t.Time,
	}
	if category != nil {
		p.Category = category.Name
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("task: share link: %w", err)
	}
	return shareBase + "?task=" + url.QueryEscape(string(b)), nil
}
