package utils

import "time"

// HoursBetween converts a pair of timestamps into an hour count. Order is
// normalised so callers never see a negative span.
func HoursBetween(start, end time.Time) float64 {
	if end.Before(start) {
		start, end = end, start
	}
	return end.Sub(start).Hours()
}
