// Package daterange handles calendar-date stays. Dates are normalised to midnight UTC, matching
// how postgres DATE columns are scanned.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"hotelbook/shared/constant"
)

var ErrEmptyRange = errors.New("check_out must be after check_in")

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Parse(value string) (time.Time, error) {
	t, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return t, nil
}

func Format(t time.Time) string {
	return Day(t).Format(constant.DayFormat)
}

// Validate rejects ranges with zero or negative nights.
func Validate(checkIn, checkOut time.Time) error {
	if !Day(checkIn).Before(Day(checkOut)) {
		return ErrEmptyRange
	}

	return nil
}

// Nights lists every occupied date in [checkIn, checkOut). The check-out date is excluded.
func Nights(checkIn, checkOut time.Time) []time.Time {
	start, end := Day(checkIn), Day(checkOut)

	dates := []time.Time{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}

func Strings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = Format(d)
	}

	return out
}
