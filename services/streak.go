package services

import "time"

// dateOnly drops the time-of-day so streak math compares calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextStreak applies the daily-streak rule to a new entry date.
// A user with no prior logged date starts at 1; re-logging the same day
// keeps the streak; logging the next calendar day extends it; anything
// else (a gap of two or more days, or a backdated entry) resets to 1.
func NextStreak(last *time.Time, current int, entry time.Time) int {
	if last == nil {
		return 1
	}

	l := dateOnly(*last)
	e := dateOnly(entry)

	switch {
	case e.Equal(l):
		return current
	case e.Equal(l.AddDate(0, 0, 1)):
		return current + 1
	default:
		return 1
	}
}
