package engine

import (
	"fmt"

	"github.com/benchguard/slope-engine/internal/fusion"
	"github.com/benchguard/slope-engine/internal/models"
)

// corroborationNotes derives cross-channel agreement notes for a tick.
// The notes ride on the tick record for operators; they never move the
// alert level.
func corroborationNotes(p fusion.Policy, band models.BandEnergy, ind models.Indicators, cls models.Classification) []string {
	notes := make([]string, 0, 4)

	if !cls.Inconclusive && cls.Label != models.LabelBenign {
		if band.FractureRatio >= p.RatioWatch {
			notes = append(notes, fmt.Sprintf("classifier %s agrees with fracture-band ratio %.2f", cls.Label, band.FractureRatio))
		} else {
			notes = append(notes, fmt.Sprintf("classifier %s lacks spectral support (ratio %.2f)", cls.Label, band.FractureRatio))
		}
	}
	if ind.FoS < p.FoSSafe && ind.TTFStatus == models.TTFIndicated {
		notes = append(notes, fmt.Sprintf("strength loss (FoS %.2f) corroborated by inverse-velocity projection", ind.FoS))
	}
	if ind.RateMMPerHour >= p.RateWatch && ind.TTFStatus == models.TTFIndicated {
		notes = append(notes, fmt.Sprintf("displacement rate %.2f mm/h consistent with acceleration trend", ind.RateMMPerHour))
	}
	if ind.FoS < p.FoSWatch && ind.PorePressureKPa > 0 {
		notes = append(notes, fmt.Sprintf("pore pressure %.0f kPa suppressing effective stress", ind.PorePressureKPa))
	}
	return notes
}
