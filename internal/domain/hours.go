package domain

import (
	"math"
	"time"
)

// CalculateHours computes net worked hours for a shift.
//
// start and end are instants on the same calendar date; if end is earlier
// than start the shift is treated as crossing midnight and 24 hours are
// added to end. Break time is subtracted from the raw duration, the result
// is clamped at zero (a break longer than the shift yields 0, not an error)
// and rounded to 2 decimal places.
func CalculateHours(start, end time.Time, breakHours float64) float64 {
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	hours := end.Sub(start).Hours() - breakHours
	if hours < 0 {
		hours = 0
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
