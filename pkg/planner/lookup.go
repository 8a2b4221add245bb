package planner

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/planner/pkg/task"
)

var (
	ErrNoMatch   = errors.New("no task matches")
	ErrAmbiguous = errors.New("more than one task matches")
)

// Resolve finds a task by id or by a unique id prefix.
func (p *Planner) Resolve(prefix string) (task.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return task.Task{}, fmt.Errorf("%w: empty id", ErrNoMatch)
	}
	if t, ok := p.Task(prefix); ok {
		return t, nil
	}
	var found []task.Task
	for _, t := range p.tasks {
		if strings.HasPrefix(t.ID, prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return task.Task{}, fmt.Errorf("%w %q", ErrNoMatch, prefix)
	case 1:
		return found[0].Clone(), nil
	default:
		return task.Task{}, fmt.Errorf("%w %q", ErrAmbiguous, prefix)
	}
}
