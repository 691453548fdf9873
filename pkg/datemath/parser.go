// Package datemath resolves due-date expressions to calendar days.
// It accepts absolute dates ("2026-08-30") and the relative forms
// people type into a due-date field: "today", "tomorrow",
// "in 3 days", "in 2 weeks", "next friday".
package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const absoluteLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (days?|weeks?|months?)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse resolves expr against now and returns midnight of the target
// day in now's location. Unknown expressions are an error, never a
// silent default.
func Parse(expr string, now time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return time.Time{}, fmt.Errorf("empty date expression")
	}

	if d, err := time.ParseInLocation(absoluteLayout, expr, now.Location()); err == nil {
		return d, nil
	}

	switch expr {
	case "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		return parseInDuration(m, now)
	}

	if day, ok := strings.CutPrefix(expr, "next "); ok {
		return parseNextWeekday(day, now)
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q, want YYYY-MM-DD, today, tomorrow, in N days, or next <weekday>", expr)
}

func parseInDuration(m []string, now time.Time) (time.Time, error) {
	var amount int
	fmt.Sscanf(m[1], "%d", &amount)

	switch {
	case strings.HasPrefix(m[2], "day"):
		return startOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(m[2], "week"):
		return startOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return startOfDay(now.AddDate(0, amount, 0)), nil
	}
}

func parseNextWeekday(day string, now time.Time) (time.Time, error) {
	target, ok := weekdays[day]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday %q", day)
	}

	// "next monday" on a Monday means a week out, not today.
	until := int(target-now.Weekday()+7) % 7
	if until == 0 {
		until = 7
	}
	return startOfDay(now.AddDate(0, 0, until)), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
