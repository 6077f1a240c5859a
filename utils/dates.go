package utils

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts YYYY-MM-DD or an RFC3339 datetime and returns the calendar
// date as UTC midnight. Time of day is discarded.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Nights counts whole days between two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// EachNight lists the nights of the half-open range [checkIn, checkOut).
// The check-out day is not occupied.
func EachNight(checkIn, checkOut time.Time) []string {
	var nights []string
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, FormatDate(d))
	}
	return nights
}

// Today returns the current calendar date as UTC midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
