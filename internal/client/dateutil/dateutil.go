// Package dateutil holds the client-side date arithmetic behind the list
// filters, the age derivation, the month cursors, and the party time picker.
// All functions take explicit reference times so callers can pin "today".
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// Age computes a whole-year age at the reference date, decrementing when the
// birthday has not yet occurred this year. Returns -1 when dob is after today.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// MonthBounds returns the first and last day of t's calendar month.
func MonthBounds(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last = first.AddDate(0, 1, -1)
	return first, last
}

// LastNDays returns the from/to ISO dates for a trailing window ending today.
func LastNDays(today time.Time, n int) (from, to string) {
	return today.AddDate(0, 0, -n).Format(ISODate), today.Format(ISODate)
}

// MonthCursor is a month/year stepper with year rollover in both directions.
type MonthCursor struct {
	Year  int
	Month int
}

// CursorFor returns a cursor positioned at t's month.
func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: int(t.Month())}
}

// Step moves the cursor by delta months, rolling the year when the month
// leaves the 1..12 range.
func (c *MonthCursor) Step(delta int) {
	c.Month += delta
	for c.Month > 12 {
		c.Month -= 12
		c.Year++
	}
	for c.Month < 1 {
		c.Month += 12
		c.Year--
	}
}

// Label renders the cursor as "January 2024".
func (c MonthCursor) Label() string {
	return fmt.Sprintf("%s %d", time.Month(c.Month).String(), c.Year)
}

// ComposeTime builds a 24-hour HH:MM value from the three picker controls:
// hour 1-12, minute as a two-digit string, and "AM" or "PM".
func ComposeTime(hour int, minute string, ampm string) string {
	h24 := hour
	if ampm == "PM" && hour != 12 {
		h24 = hour + 12
	} else if ampm == "AM" && hour == 12 {
		h24 = 0
	}
	return fmt.Sprintf("%02d:%s", h24, minute)
}

// DecomposeTime splits a stored HH:MM value back into picker controls,
// mapping hour 0 to 12 AM and hour 12 to 12 PM.
func DecomposeTime(value string) (hour int, minute string, ampm string, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, "", "", fmt.Errorf("invalid time %q", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", "", fmt.Errorf("invalid time %q", value)
	}

	ampm = "AM"
	if h >= 12 {
		ampm = "PM"
	}
	hour = h % 12
	if hour == 0 {
		hour = 12
	}
	minute = parts[1]
	if len(minute) > 2 {
		minute = minute[:2]
	}
	return hour, minute, ampm, nil
}

// FormatTime12 renders a stored HH:MM value as "3:30 PM" for display.
// Blank or malformed values render as a dash.
func FormatTime12(value string) string {
	hour, minute, ampm, err := DecomposeTime(value)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%d:%s %s", hour, minute, ampm)
}
