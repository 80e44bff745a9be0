package util

import (
	"errors"
	"fmt"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

var offsetTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

// StartOfDay drops the clock reading and keeps the calendar date
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseNaiveTimestamp parses an ISO-8601 timestamp into the single implicit zone (UTC).
// Timestamps carrying an offset keep their wall clock reading, the offset is discarded.
func ParseNaiveTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	for _, layout := range naiveTimestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	for _, layout := range offsetTimestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return time.Date(
				parsed.Year(), parsed.Month(), parsed.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), time.UTC,
			), nil
		}
	}

	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 timestamp", value)
}

// ParseDate accepts either a calendar date or a full timestamp and returns the start of its day
func ParseDate(value string) (time.Time, error) {
	parsed, err := ParseNaiveTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}

	return StartOfDay(parsed), nil
}

// ParseISODuration converts an ISO-8601 duration such as PT4H or P1D into a time.Duration
func ParseISODuration(value string) (time.Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	reference := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	return parsed.Shift(reference).Sub(reference), nil
}
