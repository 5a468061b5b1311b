package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	day10 := date(2026, time.March, 10)

	tests := []struct {
		name    string
		last    *time.Time
		current int
		entry   time.Time
		want    int
	}{
		{"no prior date starts at one", nil, 0, day10, 1},
		{"same day keeps the streak", &day10, 5, day10, 5},
		{"same day with different time keeps the streak", &day10, 5, time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC), 5},
		{"next day increments", &day10, 5, date(2026, time.March, 11), 6},
		{"two day gap resets", &day10, 5, date(2026, time.March, 12), 1},
		{"long gap resets", &day10, 12, date(2026, time.April, 2), 1},
		{"backdated entry resets", &day10, 5, date(2026, time.March, 9), 1},
		{"month boundary increments", timePtr(date(2026, time.March, 31)), 3, date(2026, time.April, 1), 4},
		{"year boundary increments", timePtr(date(2025, time.December, 31)), 9, date(2026, time.January, 1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStreak(tt.last, tt.current, tt.entry)
			if got != tt.want {
				t.Fatalf("NextStreak(%v, %d, %v) = %d, want %d", tt.last, tt.current, tt.entry, got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
