package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted formats for caller-supplied date parameters.
// ISO dates are canonical; DD/MM/YYYY is accepted for locale convenience.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

// ParseDate parses a caller-supplied date string in one of the accepted
// layouts and returns it in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}

// StartOfDay normalizes a timestamp to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay normalizes a timestamp to 23:59:59 UTC of the same day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
