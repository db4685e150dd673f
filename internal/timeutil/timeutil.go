package timeutil

import (
	"strconv"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// HeaderLayout is the human-readable timestamp used in report headers.
const HeaderLayout = "January 2, 2006 at 3:04 PM"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatHeader formats a time for display in the report header.
func FormatHeader(t time.Time) string {
	return t.Format(HeaderLayout)
}

// CurrentSeason derives the NFL season for a given time. Seasons are keyed by
// the calendar year they start in, so January/February still belong to the
// previous year's season.
func CurrentSeason(t time.Time) string {
	year := t.Year()
	if t.Month() < time.March {
		year--
	}
	return strconv.Itoa(year)
}
