package schedule

import (
	"fmt"
	"math"
)

// MinutesPerDay is 24 hours * 60 minutes. "24:00" marks end of day.
const MinutesPerDay = 1440

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
// 1440 maps to "24:00", the end-of-day sentinel.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m > MinutesPerDay {
		m = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TimeToHours converts "HH:MM" to decimal hours since midnight.
func TimeToHours(t string) float64 {
	return float64(TimeToMinutes(t)) / 60
}

// HoursToTime converts decimal hours to "HH:MM", rounding to the
// nearest whole minute. No sub-minute precision survives the trip.
func HoursToTime(h float64) string {
	return MinutesToTime(int(math.Round(h * 60)))
}

// TimesOverlap returns true if two time ranges overlap.
// Two time ranges overlap if: start1 < end2 AND start2 < end1
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}
