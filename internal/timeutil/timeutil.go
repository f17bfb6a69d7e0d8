package timeutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/fozzle/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DayKey returns the date string (YYYY-MM-DD) identifying t's calendar day.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DayBounds returns the inclusive start and end of t's calendar day in t's
// location: 00:00:00.000 through 23:59:59.999.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end = time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
	return start, end
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday 00:00:00.000 of the ISO week containing t.
// Sunday counts as the last day of the week, not the first.
func MondayOf(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := int(time.Monday - day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}
	return day.AddDate(0, 0, offset)
}

// SundayEndOf returns the end of the week starting at monday: six days later
// at 23:59:59.999.
func SundayEndOf(monday time.Time) time.Time {
	_, end := DayBounds(monday.AddDate(0, 0, 6))
	return end
}

// SameDay reports whether a and b fall on the same calendar day, compared in
// a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WithinDay reports whether t falls inside the inclusive [start, end] day
// bounds.
func WithinDay(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
