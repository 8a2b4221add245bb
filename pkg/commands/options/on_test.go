package options

import (
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2026, 12, 5, 15, 0, 0, 0, time.Local)
	tests := map[string]struct {
		in   string
		want time.Time
		nil  bool
	}{
		"unset":       {in: "", nil: true},
		"iso":         {in: "2027-2-28", want: time.Date(2027, 2, 28, 0, 0, 0, 0, time.Local)},
		"short":       {in: "12/24", want: time.Date(2026, 12, 24, 0, 0, 0, 0, time.Local)},
		"short past":  {in: "1/3", want: time.Date(2027, 1, 3, 0, 0, 0, 0, time.Local)},
		"short today": {in: "12/5", want: time.Date(2026, 12, 5, 0, 0, 0, 0, time.Local)},
		"tomorrow":    {in: "tomorrow", want: now.AddDate(0, 0, 1)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := OnOptions{OnString: tc.in}
			got, err := o.GetOn(now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if _, err := (&OnOptions{OnString: "someday"}).GetOn(now); err == nil {
		t.Fatalf("expected error")
	}
}
