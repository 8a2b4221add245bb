package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28", --on=today or --on=tomorrow.`)
}

// GetOn parses the --on flag relative to now. An unset flag returns nil.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	switch o.OnString {
	case "":
		return nil, nil
	case "today":
		return &now, nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return &t, nil
	case "yesterday":
		t := now.AddDate(0, 0, -1)
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(midnight(now)) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
