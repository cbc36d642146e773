package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayKeyLayout is the canonical day key format used by status stores.
const DayKeyLayout = "2006-01-02"

var (
	ErrInvalidDayKey = errors.New("invalid day key")
	ErrInvalidAnchor = errors.New("invalid anchor date")
)

// DayKey returns the canonical YYYY-MM-DD key for the calendar day of t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into a UTC midnight.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(DayKeyLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDayKey, key)
	}
	return t, nil
}

// ParseAnchor parses the configured anchor date. The anchor must be a strict
// YYYY-MM-DD date; relative expressions are not accepted so that a schedule
// never shifts with the clock.
func ParseAnchor(s string) (time.Time, error) {
	t, err := time.Parse(DayKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidAnchor, s)
	}
	return t, nil
}

// ParseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", "monday", "next tuesday",
// "on Monday", "2024-01-15", "Jan 2", "Jan 2 2006", "January 2",
// "January 2 2006", "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
// The result is a UTC midnight.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Strip "on " prefix
	s = strings.TrimPrefix(s, "on ")
	s = strings.TrimSpace(s)

	switch s {
	case "today":
		return truncateToDay(now), nil
	case "tomorrow":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(now, wd), nil
	}

	layouts := []string{
		DayKeyLayout,
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			// For layouts without a year, use the current year
			if !hasYear(layout) {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// truncateToDay returns the UTC midnight of t's calendar day as seen in t's
// own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := truncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
