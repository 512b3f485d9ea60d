// Package dashboard contains the finance summary and its aggregates.
package dashboard

import (
	"fmt"
	"time"
)

// MonthLayout is the query format of a month ("2024-06").
const MonthLayout = "2006-01"

// allowanceWeeks is the number of weekly allowances in a month.
const allowanceWeeks = 4

// ParseMonth returns the first and last day of a "YYYY-MM" month in UTC.
func ParseMonth(month string) (start, end time.Time, err error) {
	parsed, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	start = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1), nil
}

// WeekOfMonth returns ceil(day/7): days 1-7 are week 1, 29-31 are week 5.
func WeekOfMonth(day int) int {
	return (day + 6) / 7
}

// AllowanceWeek caps WeekOfMonth at 4, the number of weekly allowances.
func AllowanceWeek(day int) int {
	week := WeekOfMonth(day)
	if week > allowanceWeeks {
		return allowanceWeeks
	}
	return week
}

// DaysPassed counts the elapsed days of the month as of now, including
// today. Past months count every day; future months count none.
func DaysPassed(start, end, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case today.Before(start):
		return 0
	case today.After(end):
		return end.Day()
	default:
		return today.Day()
	}
}

// ReferenceDay is the day used for week-of-month figures: today for the
// current month, the last day for past months and the first for future ones.
func ReferenceDay(start, end, now time.Time) int {
	days := DaysPassed(start, end, now)
	if days == 0 {
		return 1
	}
	return days
}
