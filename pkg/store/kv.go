// Package store persists planner state in a simple key-value store.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that were never set or were
// removed.
var ErrNotFound = errors.New("store: key not found")

// Keys used by the planner.
const (
	KeyTasks                = "tasks"
	KeyCategories           = "categories"
	KeyLanguage             = "language"
	KeyNotificationsEnabled = "notificationsEnabled"
	KeyOnboardingComplete   = "onboardingComplete"
	KeyLastVisit            = "lastVisit"
	KeyTheme                = "theme"
)

// KV is the persistence contract: synchronous get/set/remove keyed by
// string.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Watcher is implemented by stores that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
