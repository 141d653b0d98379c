package dateutil

import (
	"fmt"
	"testing"
	"time"
)

func TestLocalDayAcrossOffsets(t *testing.T) {
	// Midnight local time on day N must format as day N for every UTC
	// offset the IANA database allows.
	for offset := -12; offset <= 14; offset++ {
		loc := time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
		midnight := time.Date(2024, time.March, 15, 0, 0, 0, 0, loc)

		if got := LocalDay(midnight, loc); got != "2024-03-15" {
			t.Errorf("LocalDay(midnight, UTC%+d) = %q, want 2024-03-15", offset, got)
		}
		// Same instant viewed from the zone it belongs to, one second
		// before the next midnight.
		lateEvening := time.Date(2024, time.March, 15, 23, 59, 59, 0, loc)
		if got := LocalDay(lateEvening, loc); got != "2024-03-15" {
			t.Errorf("LocalDay(23:59:59, UTC%+d) = %q, want 2024-03-15", offset, got)
		}
	}
}

func TestLocalDayConvertsBeforeFormatting(t *testing.T) {
	// 2024-03-15 23:00 UTC is already 2024-03-16 in UTC+3.
	east := time.FixedZone("UTC+3", 3*3600)
	utc := time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)
	if got := LocalDay(utc, east); got != "2024-03-16" {
		t.Errorf("LocalDay = %q, want 2024-03-16", got)
	}
	// And still 2024-03-15 in UTC-5.
	west := time.FixedZone("UTC-5", -5*3600)
	if got := LocalDay(utc, west); got != "2024-03-15" {
		t.Errorf("LocalDay = %q, want 2024-03-15", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February, time.UTC)
	if first.Format(DayFormat) != "2024-02-01" {
		t.Errorf("first = %v", first)
	}
	if last.Format(DayFormat) != "2024-02-29" {
		t.Errorf("last = %v", last)
	}
}

func TestEachDayInclusive(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	var got []string
	EachDay(start, end, func(day string) { got = append(got, day) })

	want := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
	if len(got) != len(want) {
		t.Fatalf("EachDay yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEachDayEmptyRange(t *testing.T) {
	start := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	calls := 0
	EachDay(start, end, func(string) { calls++ })
	if calls != 0 {
		t.Errorf("EachDay over inverted range made %d calls, want 0", calls)
	}
}

func TestEachDayAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// US spring-forward happened on 2024-03-10.
	start := time.Date(2024, time.March, 9, 0, 0, 0, 0, loc)
	end := time.Date(2024, time.March, 11, 0, 0, 0, 0, loc)

	var got []string
	EachDay(start, end, func(day string) { got = append(got, day) })
	want := []string{"2024-03-09", "2024-03-10", "2024-03-11"}
	if len(got) != 3 {
		t.Fatalf("EachDay across DST yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestYesterday(t *testing.T) {
	now := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)
	y := Yesterday(now)
	if y.Format(DayFormat) != "2024-02-29" {
		t.Errorf("Yesterday(2024-03-01) = %v, want 2024-02-29", y)
	}
	if y.Hour() != 0 || y.Minute() != 0 {
		t.Errorf("Yesterday not truncated to midnight: %v", y)
	}
}

func TestDateKeyIgnoresZoneOffset(t *testing.T) {
	// A date column scans as midnight in some fixed zone; the key must
	// be the wall-clock date no matter which zone that was.
	for offset := -12; offset <= 14; offset++ {
		loc := time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
		midnight := time.Date(2024, time.March, 15, 0, 0, 0, 0, loc)
		if got := DateKey(midnight); got != "2024-03-15" {
			t.Errorf("DateKey(midnight, UTC%+d) = %q, want 2024-03-15", offset, got)
		}
	}
}
