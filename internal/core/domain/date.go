package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across CLI, config and storage.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date at midnight UTC.
// The year, month and day are taken from t's own location.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q (want YYYY-MM-DD)", ErrInvalidInput, s)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from "from" to "to".
// The result is negative when "to" is earlier than "from".
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
