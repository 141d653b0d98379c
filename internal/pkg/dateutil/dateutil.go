package dateutil

import (
	"time"
)

// DayFormat is the canonical calendar-day key used across the API.
const DayFormat = "2006-01-02"

// LocalDay formats t as a YYYY-MM-DD string for the calendar day in loc.
// The conversion happens before formatting, so a timestamp close to
// midnight never shifts into the neighbouring UTC day.
func LocalDay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayFormat)
}

// DateKey formats a date-only value as its YYYY-MM-DD key. Postgres
// date columns scan as midnight in some fixed zone; the wall-clock
// date already is the calendar day, so converting the instant into
// another zone would shift it. Use LocalDay for real timestamps only.
func DateKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayFormat, s, loc)
}

// MonthBounds returns midnight of the first and last day of the month in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (first, last time.Time) {
	if loc == nil {
		loc = time.Local
	}
	first = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EachDay calls fn with every calendar-day string in [start, end] inclusive.
// Iteration uses AddDate, so DST transitions inside the range cannot skip
// or repeat a day. An end before start yields no calls.
func EachDay(start, end time.Time, fn func(day string)) {
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	stop := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for !cur.After(stop) {
		fn(cur.Format(DayFormat))
		cur = cur.AddDate(0, 0, 1)
	}
}

// Yesterday returns midnight of the day before t in t's location.
func Yesterday(t time.Time) time.Time {
	y := t.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, t.Location())
}
