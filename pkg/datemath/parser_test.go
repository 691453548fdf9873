package datemath

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	// A Friday.
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		expr string
		want time.Time
	}{
		{"2026-09-01", day(2026, time.September, 1)},
		{"today", day(2026, time.August, 28)},
		{"Tomorrow", day(2026, time.August, 29)},
		{"in 3 days", day(2026, time.August, 31)},
		{"in 1 day", day(2026, time.August, 29)},
		{"in 2 weeks", day(2026, time.September, 11)},
		{"in 1 month", day(2026, time.September, 28)},
		{"next monday", day(2026, time.August, 31)},
		{"next friday", day(2026, time.September, 4)}, // a week out, not today
		{"  next Sunday  ", day(2026, time.August, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Parse(tc.expr, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("rejects unknown expressions", func(t *testing.T) {
		for _, expr := range []string{"", "someday", "in five days", "next payday", "31-12-2026"} {
			if _, err := Parse(expr, now); err == nil {
				t.Errorf("expected error for %q", expr)
			}
		}
	})
}
