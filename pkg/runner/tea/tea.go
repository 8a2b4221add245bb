// Package teaui is the interactive terminal front end of the planner,
// built on Bubble Tea.
package teaui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
)

// UI runs the full screen planner.
type UI struct {
	Planner *planner.Planner
	// Store is watched for changes made by other processes. Optional.
	Store *store.Disk
	Log   *zap.Logger

	toasts *toastQueue
}

// Notifier collects planner toasts for display. It may be handed to the
// planner before Planner is set.
func (u *UI) Notifier() planner.Notifier {
	if u.toasts == nil {
		u.toasts = &toastQueue{}
	}
	return planner.NotifierFunc(u.toasts.push)
}

// Do runs the program until the user quits or ctx is cancelled.
func (u *UI) Do(ctx context.Context) error {
	if u.Planner == nil {
		return errors.New("can not start ui, no planner")
	}
	if u.Log == nil {
		u.Log = zap.NewNop()
	}
	if u.toasts == nil {
		u.toasts = &toastQueue{}
	}

	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var events <-chan store.Event
	if u.Store != nil {
		ch, err := u.Store.Watch(ctx)
		if err != nil {
			u.Log.Warn("store watch disabled", zap.Error(err))
		} else {
			events = ch
		}
	}

	m := New(u.Planner, u.toasts, events, u.Log)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
