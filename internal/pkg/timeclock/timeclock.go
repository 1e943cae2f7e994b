// Package timeclock computes worked and break durations from time-of-day values.
//
// All inputs are "HH:MM" (or "HH:MM:SS", seconds ignored) on a 24-hour clock and
// are assumed to fall on the same calendar day. Malformed strings are a caller
// responsibility; they contribute zero minutes here.
package timeclock

import (
	"math"
	"strconv"
	"strings"
)

// minutesOfDay parses a clock string into minutes since midnight.
// Returns 0, false when the value is nil, empty, or unparseable.
func minutesOfDay(s *string) (int, bool) {
	if s == nil || *s == "" {
		return 0, false
	}
	parts := strings.Split(*s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// spanMinutes returns end minus start in minutes, truncated at zero.
// A clock-out earlier than clock-in yields 0, not a next-day rollover.
func spanMinutes(start, end *string) (int, bool) {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0, false
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0, false
	}
	diff := endMin - startMin
	if diff < 0 {
		diff = 0
	}
	return diff, true
}

func round2(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// WorkedHours returns the worked duration in decimal hours.
// Break time is subtracted only when both break bounds are present.
// Missing clock-in or clock-out yields 0.
func WorkedHours(clockIn, clockOut, breakStart, breakEnd *string) float64 {
	total, ok := spanMinutes(clockIn, clockOut)
	if !ok {
		return 0
	}

	if breakMin, ok := spanMinutes(breakStart, breakEnd); ok {
		total -= breakMin
	}

	if total < 0 {
		total = 0
	}
	return round2(float64(total) / 60)
}

// BreakHours returns the break duration in decimal hours, 0 when either bound is missing.
func BreakHours(breakStart, breakEnd *string) float64 {
	breakMin, ok := spanMinutes(breakStart, breakEnd)
	if !ok {
		return 0
	}
	return round2(float64(breakMin) / 60)
}
