package services

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// ParseMonthKey validates a YYYY-MM key and returns the first day of that
// month.
func ParseMonthKey(key string) (time.Time, error) {
	parsed, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return parsed, nil
}

func MonthKey(value time.Time) string {
	return value.Format(monthKeyLayout)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the 7-column grid offset of day 1, with the week
// starting on Sunday (Sunday = 0).
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthDayStrings lists every date of the month as YYYY-MM-DD.
func MonthDayStrings(year int, month time.Month) []string {
	count := DaysInMonth(year, month)
	days := make([]string, 0, count)
	for day := 1; day <= count; day++ {
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
	}
	return days
}
