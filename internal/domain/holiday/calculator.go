// Package holiday holds the pure date arithmetic and input validation for
// guild holidays. Everything here is a function over explicit inputs; no
// clocks, no storage.
package holiday

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

const (
	february = 2
	feb29    = 29
	feb28    = 28
)

// ParseMonthDay splits an MM-DD string into its month and day numbers. It
// only checks the shape; ValidateDate checks calendar validity.
func ParseMonthDay(date string) (month, day int, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid date format, expected MM-DD, got %q", date)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in %q: %w", date, err)
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid day in %q: %w", date, err)
	}
	return month, day, nil
}

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// occurrenceIn resolves a month/day to a concrete date in the given year.
// Feb 29 in a non-leap year resolves to Feb 28.
func occurrenceIn(year, month, day int) time.Time {
	if month == february && day == feb29 && !IsLeapYear(year) {
		day = feb28
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// truncateToDay drops the time-of-day component, keeping UTC.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of days from today to the next present-or-
// future occurrence of the MM-DD date. The result is 0 on the day itself and
// otherwise positive; a date already past this year counts toward next year.
func DaysUntil(today time.Time, date string) (int, error) {
	month, day, err := ParseMonthDay(date)
	if err != nil {
		return 0, err
	}

	today = truncateToDay(today)
	occurrence := occurrenceIn(today.Year(), month, day)
	days := int(occurrence.Sub(today).Hours() / 24)
	if days < 0 {
		occurrence = occurrenceIn(today.Year()+1, month, day)
		days = int(occurrence.Sub(today).Hours() / 24)
	}
	return days, nil
}

// DaysSincePrevious returns how many days ago the most recent occurrence of
// the MM-DD date was. 0 means today; 1 means it was yesterday. Used for
// phase-end detection.
func DaysSincePrevious(today time.Time, date string) (int, error) {
	month, day, err := ParseMonthDay(date)
	if err != nil {
		return 0, err
	}

	today = truncateToDay(today)
	occurrence := occurrenceIn(today.Year(), month, day)
	days := int(today.Sub(occurrence).Hours() / 24)
	if days < 0 {
		occurrence = occurrenceIn(today.Year()-1, month, day)
		days = int(today.Sub(occurrence).Hours() / 24)
	}
	return days, nil
}

// OccurrenceYear returns the calendar year of the next present-or-future
// occurrence of the MM-DD date. Phase records are keyed by this year so the
// lifecycle resets when the date wraps.
func OccurrenceYear(today time.Time, date string) (int, error) {
	month, day, err := ParseMonthDay(date)
	if err != nil {
		return 0, err
	}
	today = truncateToDay(today)
	if occurrenceIn(today.Year(), month, day).Before(today) {
		return today.Year() + 1, nil
	}
	return today.Year(), nil
}

// SortedUpcoming computes DaysUntil for every holiday and names the nearest
// one. Holidays with unparseable dates are skipped. Ties break by input
// order, so callers that want reproducible results pass a sorted slice. The
// nearest name is empty when the set is empty.
func SortedUpcoming(holidays []entity.Holiday, today time.Time) (map[string]int, string) {
	daysUntil := make(map[string]int, len(holidays))
	nearest := ""
	nearestDays := -1

	for _, h := range holidays {
		days, err := DaysUntil(today, h.Date)
		if err != nil {
			continue
		}
		daysUntil[h.Name] = days
		if nearestDays == -1 || days < nearestDays {
			nearestDays = days
			nearest = h.Name
		}
	}
	return daysUntil, nearest
}
