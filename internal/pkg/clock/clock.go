package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay is the wrap point for overnight durations.
const minutesPerDay = 24 * 60

// ParseError reports a clock string that does not look like HH:MM.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q: expected HH:MM", e.Input)
}

// Parse converts an "HH:MM" wall-clock string to minutes since midnight,
// in [0, 1439]. Leading zeros are optional: "9:00" and "09:00" parse
// identically. Anything else fails with a *ParseError.
func Parse(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Input: text}
	}

	hours, ok := parseField(parts[0])
	if !ok || hours > 23 {
		return 0, &ParseError{Input: text}
	}
	minutes, ok := parseField(parts[1])
	if !ok || minutes > 59 {
		return 0, &ParseError{Input: text}
	}

	return hours*60 + minutes, nil
}

// parseField accepts one or two digits, nothing else.
func parseField(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DurationMinutes returns the non-negative minutes from start to end.
// An end earlier than start (by minute of day) is taken to fall on the
// next calendar day, so a 21:00-06:00 night shift yields 540, not -900.
// Identical start and end report 0, never a full day.
func DurationMinutes(start, end string) (int, error) {
	startMin, err := Parse(start)
	if err != nil {
		return 0, err
	}
	endMin, err := Parse(end)
	if err != nil {
		return 0, err
	}

	return (endMin - startMin + minutesPerDay) % minutesPerDay, nil
}

// ToHours converts minutes to fractional hours. Rounding is the caller's
// display concern.
func ToHours(minutes int) float64 {
	return float64(minutes) / 60.0
}
