// Package dateutil provides calendar date parsing and formatting utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical diary date format.
const DateLayout = "2006-01-02"

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// DateRange represents a validated inclusive date range.
type DateRange struct {
	Start string
	End   string
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or any form ParseDate accepts.
// endDate can be empty (defaults to startDate).
// Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	// YYYY-MM-DD sorts lexically
	if end < start {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return DateOf(time.Now())
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate normalizes a date argument to YYYY-MM-DD.
// Accepts an empty string or "today", "yesterday", and absolute dates.
func ParseDate(s string) (string, error) {
	return ParseDateRelative(s, time.Now())
}

// ParseDateRelative is ParseDate with an explicit reference time.
func ParseDateRelative(s string, now time.Time) (string, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	switch input {
	case "", "today":
		return DateOf(now), nil
	case "yesterday":
		return DateOf(TruncateToDay(now).AddDate(0, 0, -1)), nil
	}
	if !ValidDate(input) {
		return "", ErrInvalidDateFormat
	}
	return input, nil
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDateTime renders an instant as a short local date and time for display.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDayHeader renders a YYYY-MM-DD date as "Monday, January 2, 2006".
// Invalid input is returned unchanged.
func FormatDayHeader(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
