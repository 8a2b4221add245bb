// Package remind prints tasks that are about to come due, optionally
// watching for new ones.
package remind

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/reminder"
)

// Remind prints reminders for tasks due within Window. With Follow set it
// keeps checking every Interval and prints each reminder once.
type Remind struct {
	Planner  *planner.Planner
	Window   time.Duration
	Follow   bool
	Interval time.Duration
	Log      *zap.Logger
	Out      io.Writer
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not remind, no planner")
	}
	if n.Log == nil {
		n.Log = zap.NewNop()
	}
	pp := printers.PrettyPrint{Out: n.Out, Translator: n.Planner.Translator()}

	if !n.Follow {
		now := n.Planner.Now()
		pp.NewLine()
		pp.Reminders(now, reminder.Due(n.Planner.Tasks(), now, n.Window)...)
		return nil
	}

	interval := n.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	tracker := reminder.NewTracker()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n.Planner.Preferences().NotificationsEnabled {
			n.Planner.Reload()
			now := n.Planner.Now()
			if fresh := tracker.Fresh(reminder.Due(n.Planner.Tasks(), now, n.Window)); len(fresh) > 0 {
				n.Log.Debug("reminders due", zap.Int("count", len(fresh)))
				pp.Reminders(now, fresh...)
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
