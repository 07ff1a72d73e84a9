package utils

import (
	"fmt"
	"time"
)

const (
	// Punch documents print day-first dates and 24h times.
	PunchDateLayout = "02/01/2006"
	PunchTimeLayout = "15:04:05"
)

func ParsePunchDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(PunchDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid punch date %q: %w", s, err)
	}
	return t, nil
}

// CombinePunchDateTime builds the sort key from the printed date and time
// columns. Either side failing to parse fails the whole value.
func CombinePunchDateTime(dateStr, timeStr string) (time.Time, error) {
	t, err := time.ParseInLocation(PunchDateLayout+" "+PunchTimeLayout, dateStr+" "+timeStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid punch datetime %q %q: %w", dateStr, timeStr, err)
	}
	return t, nil
}

func FormatPunchDate(t time.Time) string {
	return t.Format(PunchDateLayout)
}

// DateOf truncates to midnight so calendar dates compare with Equal/After.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SecondsOfDay returns the wall-clock time as seconds since midnight.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// ClockSeconds parses an HH:MM:SS literal into seconds since midnight.
func ClockSeconds(s string) (int, error) {
	t, err := time.Parse(PunchTimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return SecondsOfDay(t), nil
}
