package utils

import "time"

// Calendar dates are passed around as YYYY-MM-DD strings in the user's
// timezone. ISO dates compare correctly as plain strings, which keeps the
// progress queries portable between Postgres and the SQLite test driver.

const DateLayout = time.DateOnly

// LoadLocation resolves an IANA timezone name, falling back to UTC for
// empty or unknown values so a bad profile field never breaks eligibility.
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateIn formats t as a calendar date in the given timezone.
func DateIn(t time.Time, tz string) string {
	return t.In(LoadLocation(tz)).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// AddDays shifts a calendar date by n days.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// DaysBetween returns the number of whole days from one calendar date to
// another. Negative when `to` precedes `from`.
func DaysBetween(from, to string) int {
	a, err := ParseDate(from)
	if err != nil {
		return 0
	}
	b, err := ParseDate(to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
