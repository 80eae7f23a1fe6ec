package trend

import (
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/utils"
)

// Summarize condenses a site's recorded ticks into trend figures. Records
// are expected oldest first, the order the tick log keeps them in.
//
// RateTrendMMH is the least-squares slope of displacement rate over elapsed
// hours, so a positive value means the slope is accelerating. LatestTTF is
// the most recent tick's projection, nil when that tick projected none.
func Summarize(siteID string, records []models.TickRecord) models.SiteSummary {
	summary := models.SiteSummary{SiteID: siteID}
	if len(records) == 0 {
		return summary
	}

	summary.Ticks = len(records)
	summary.TicksByLevel = make(map[string]int, 4)
	summary.FirstTick = records[0].At
	summary.LastTick = records[len(records)-1].At

	last := records[len(records)-1]
	summary.CurrentLevel = last.Level
	if last.Physics.TTFHours != nil {
		ttf := *last.Physics.TTFHours
		summary.LatestTTF = &ttf
	}

	elapsed := make([]float64, 0, len(records))
	rates := make([]float64, 0, len(records))
	for i, rec := range records {
		summary.TicksByLevel[rec.Level.String()]++

		if i == 0 || rec.Physics.FoS < summary.MinFoS {
			summary.MinFoS = rec.Physics.FoS
		}
		if rec.Band.FractureRatio > summary.MaxRatio {
			summary.MaxRatio = rec.Band.FractureRatio
		}
		if rec.Transition.Changed {
			change := rec.Transition
			summary.LastChange = &change
		}

		elapsed = append(elapsed, utils.HoursBetween(records[0].At, rec.At))
		rates = append(rates, rec.Physics.RateMMPerHour)
	}
	summary.RateTrendMMH = rateSlope(elapsed, rates)

	// The current level holds since the start of the trailing run of ticks
	// at that level.
	summary.AtLevelSince = last.At
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Level != summary.CurrentLevel {
			break
		}
		summary.AtLevelSince = records[i].At
	}

	return summary
}

func rateSlope(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
