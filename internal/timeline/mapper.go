// Package timeline converts between wall-clock times and vertical
// positions on a bounded daily axis. Everything here is pure: the same
// inputs always produce the same clamped outputs, with no error cases.
package timeline

import (
	"math"

	"tourboard/internal/schedule"
)

// Default visible range and scale band.
const (
	// DefaultDayStart is the top of the visible axis, in decimal hours.
	DefaultDayStart = 6.5 // 06:30
	// DefaultDayEnd is the bottom of the visible axis (exclusive).
	DefaultDayEnd = 24.0
	// DefaultMinPixelsPerHour keeps short activities legible.
	DefaultMinPixelsPerHour = 2.0
	// DefaultMaxPixelsPerHour keeps long activities on screen.
	DefaultMaxPixelsPerHour = 8.0
)

// Axis is a bounded daily time axis with a vertical scale. The zero value
// is not useful; construct with NewAxis or fill all fields.
type Axis struct {
	DayStart      float64 // decimal hours, inclusive
	DayEnd        float64 // decimal hours, exclusive
	PixelsPerHour float64
}

// NewAxis returns an Axis over the default visible range.
func NewAxis(pixelsPerHour float64) Axis {
	return Axis{
		DayStart:      DefaultDayStart,
		DayEnd:        DefaultDayEnd,
		PixelsPerHour: pixelsPerHour,
	}
}

// Hours returns the visible span in decimal hours.
func (a Axis) Hours() float64 {
	return a.DayEnd - a.DayStart
}

// Height returns the total axis height in pixels.
func (a Axis) Height() float64 {
	return a.Hours() * a.PixelsPerHour
}

// TimeToY converts decimal hours to a vertical offset from the axis top.
func (a Axis) TimeToY(hours float64) float64 {
	return (hours - a.DayStart) * a.PixelsPerHour
}

// YToTime converts a vertical offset back to decimal hours, always
// clamped into [DayStart, DayEnd).
func (a Axis) YToTime(y float64) float64 {
	return a.ClampHours(a.DayStart + y/a.PixelsPerHour)
}

// ClampHours clamps decimal hours into the visible range.
func (a Axis) ClampHours(hours float64) float64 {
	if hours < a.DayStart {
		return a.DayStart
	}
	if hours > a.DayEnd {
		return a.DayEnd
	}
	return hours
}

// ClampWindow clamps a [start, start+duration] window so it lies fully
// inside the visible range without changing its duration. Durations
// longer than the visible span collapse to the full range.
func (a Axis) ClampWindow(start, duration float64) (clampedStart, clampedEnd float64) {
	if duration > a.Hours() {
		return a.DayStart, a.DayEnd
	}
	if start < a.DayStart {
		start = a.DayStart
	}
	if start+duration > a.DayEnd {
		start = a.DayEnd - duration
	}
	return start, start + duration
}

// FitPixelsPerHour derives the vertical scale from the viewport height and
// the number of concurrently displayed groups, so each group receives an
// equal share. The result is clamped into [minScale, maxScale].
func FitPixelsPerHour(viewportHeight, numGroups int, dayStart, dayEnd, minScale, maxScale float64) float64 {
	if numGroups < 1 {
		numGroups = 1
	}
	span := dayEnd - dayStart
	if span <= 0 {
		return minScale
	}
	scale := float64(viewportHeight) / float64(numGroups) / span
	return math.Min(maxScale, math.Max(minScale, scale))
}

// ParseClock converts a zero-padded "HH:MM" string to decimal hours.
func ParseClock(t string) float64 {
	return schedule.TimeToHours(t)
}

// FormatClock converts decimal hours to "HH:MM", rounded to the nearest
// whole minute. 24.0 formats as "24:00".
func FormatClock(hours float64) string {
	return schedule.HoursToTime(hours)
}
