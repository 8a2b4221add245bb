package task

import "strings"

// Category groups tasks. Color is an opaque style token; the terminal UI
// understands hex colors.
type Category struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// AllCategories is the category filter value that matches every task.
const AllCategories = "all"

// DefaultCategories is the category set used when nothing was saved.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#3b82f6"},
		{ID: "personal", Name: "Personal", Color: "#22c55e"},
		{ID: "health", Name: "Health", Color: "#ef4444"},
		{ID: "learning", Name: "Learning", Color: "#a855f7"},
		{ID: "errands", Name: "Errands", Color: "#eab308"},
	}
}

// CategoryID derives an id from a display name: "Side Projects" becomes
// "side-projects".
func CategoryID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// FindCategory looks a category up by id.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
