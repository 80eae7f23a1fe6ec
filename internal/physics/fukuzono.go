package physics

import (
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

// minFitPoints is the floor for an inverse-velocity fit; two points always
// fit a line, so anything less than three says nothing about a trend.
const minFitPoints = 3

// velocitySample is one usable displacement-pair velocity on the fit axis.
type velocitySample struct {
	elapsedHours float64
	inverseV     float64
}

// InverseVelocityTTF extrapolates time to failure from a displacement
// history using the inverse-velocity method: pair velocities are inverted
// and fitted against elapsed time, and a negative trend line crosses zero
// at the projected failure time.
//
// A nil ttfHours with a nil error means the trend does not indicate an
// approaching failure (steady or decelerating movement). Pairs with
// non-increasing timestamps or non-positive velocity are skipped and do not
// count toward minPoints.
func InverseVelocityTTF(history []models.DisplacementPoint, now time.Time, minPoints int) (ttfHours *float64, slope float64, err error) {
	if minPoints < minFitPoints {
		minPoints = minFitPoints
	}

	samples := usableVelocities(history)
	if len(samples) < minPoints {
		return nil, 0, &models.InsufficientHistoryError{Needed: minPoints, Got: len(samples)}
	}

	slope, intercept, ok := fitLine(samples)
	if !ok {
		return nil, 0, &models.InsufficientHistoryError{Needed: minPoints, Got: len(samples)}
	}
	if slope >= 0 {
		return nil, slope, nil
	}

	// The fitted line hits zero inverse velocity at -intercept/slope hours
	// after the history origin.
	crossing := -intercept / slope
	elapsedNow := now.Sub(history[0].At).Hours()
	remaining := crossing - elapsedNow
	if remaining < 0 {
		remaining = 0
	}
	return &remaining, slope, nil
}

func usableVelocities(history []models.DisplacementPoint) []velocitySample {
	if len(history) < 2 {
		return nil
	}

	origin := history[0].At
	samples := make([]velocitySample, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		dt := history[i].At.Sub(history[i-1].At).Hours()
		if dt <= 0 {
			continue
		}
		v := (history[i].DisplacementMM - history[i-1].DisplacementMM) / dt
		if v <= 0 {
			continue
		}
		samples = append(samples, velocitySample{
			elapsedHours: history[i].At.Sub(origin).Hours(),
			inverseV:     1 / v,
		})
	}
	return samples
}

// fitLine runs an ordinary least-squares fit of inverse velocity over
// elapsed hours. ok is false when the time axis is degenerate.
func fitLine(samples []velocitySample) (slope, intercept float64, ok bool) {
	n := float64(len(samples))
	var sumT, sumY, sumTT, sumTY float64
	for _, s := range samples {
		sumT += s.elapsedHours
		sumY += s.inverseV
		sumTT += s.elapsedHours * s.elapsedHours
		sumTY += s.elapsedHours * s.inverseV
	}

	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		return 0, 0, false
	}
	slope = (n*sumTY - sumT*sumY) / denom
	intercept = (sumY - slope*sumT) / n
	return slope, intercept, true
}
