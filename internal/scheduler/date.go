package scheduler

import "time"

// DateOf truncates t to its calendar date in t's own location and returns
// that date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func addDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// daysBetween returns the number of whole days from a to b for normalized dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
