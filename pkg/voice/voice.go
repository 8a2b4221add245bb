// Package voice turns a spoken command such as "call the dentist important
// health" into a task.
package voice

import (
	"regexp"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/task"
)

var (
	highPattern = regexp.MustCompile(`(?i)high priority|important`)
	lowPattern  = regexp.MustCompile(`(?i)low priority`)
)

// Parse builds a task from transcript text. Priority defaults to medium and
// the category to the first one given. "high priority" or "important" raise
// the priority; "low priority" lowers it. The first category whose name
// appears in the text is chosen. Matched phrases are removed from the title.
// The returned task may have an empty title; callers validate it.
func Parse(text string, categories []task.Category, now time.Time) task.Task {
	title := text
	priority := task.PriorityMedium
	lower := strings.ToLower(text)

	switch {
	case highPattern.MatchString(text):
		priority = task.PriorityHigh
		title = highPattern.ReplaceAllString(title, "")
	case strings.Contains(lower, "low priority"):
		priority = task.PriorityLow
		title = lowPattern.ReplaceAllString(title, "")
	}

	category := ""
	if len(categories) > 0 {
		category = categories[0].ID
	}
	for _, c := range categories {
		if c.Name == "" || !strings.Contains(lower, strings.ToLower(c.Name)) {
			continue
		}
		category = c.ID
		title = regexp.MustCompile(`(?i)`+regexp.QuoteMeta(c.Name)).ReplaceAllString(title, "")
		break
	}

	return task.New(strings.Join(strings.Fields(title), " "), category, priority, now)
}
