package physics

import (
	"errors"
	"fmt"

	"github.com/benchguard/slope-engine/internal/models"
)

// Analyzer is the physics channel: it turns a reading plus the site's
// displacement history into stability indicators.
type Analyzer struct {
	geom      models.SlopeGeometry
	strength  models.Strength
	minPoints int
}

// NewAnalyzer validates the site's default geometry and material strength.
func NewAnalyzer(geom models.SlopeGeometry, strength models.Strength, minPoints int) (*Analyzer, error) {
	if err := validateGeometry(geom); err != nil {
		return nil, fmt.Errorf("site geometry: %w", err)
	}
	if err := validateStrength(strength); err != nil {
		return nil, fmt.Errorf("site strength: %w", err)
	}
	if minPoints < minFitPoints {
		minPoints = minFitPoints
	}
	return &Analyzer{geom: geom, strength: strength, minPoints: minPoints}, nil
}

// Indicators computes the full physics bundle for one tick. The history
// must already include the current reading's displacement point.
//
// An inverse-velocity fit that has not seen enough movement yet is a normal
// early-life condition, not a channel failure; it is reported through
// TTFStatus so the tick can proceed.
func (a *Analyzer) Indicators(reading models.SensorReading, history []models.DisplacementPoint) (models.Indicators, error) {
	geom := a.geom
	if reading.Geometry != nil {
		geom = *reading.Geometry
	}

	stresses, err := FactorOfSafety(geom, a.strength, reading.PorePressureKPa, reading.DisplacementMM)
	if err != nil {
		return models.Indicators{}, err
	}

	rate := reading.RateMMPerHour
	if rate == 0 && len(history) >= 2 {
		last := history[len(history)-1]
		prev := history[len(history)-2]
		if dt := last.At.Sub(prev.At).Hours(); dt > 0 {
			rate = (last.DisplacementMM - prev.DisplacementMM) / dt
		}
	}

	ind := models.Indicators{
		FoS:                stresses.FoS,
		NormalStressKPa:    stresses.NormalKPa,
		EffectiveStressKPa: stresses.EffectiveKPa,
		ShearStressKPa:     stresses.ShearKPa,
		PorePressureKPa:    stresses.PoreKPa,
		RateMMPerHour:      rate,
	}

	ttf, slope, err := InverseVelocityTTF(history, reading.At, a.minPoints)
	if err != nil {
		var insufficient *models.InsufficientHistoryError
		if errors.As(err, &insufficient) {
			ind.TTFStatus = models.TTFInsufficientHistory
			return ind, nil
		}
		return models.Indicators{}, err
	}

	ind.InverseVelocitySlope = slope
	if ttf == nil {
		ind.TTFStatus = models.TTFNotIndicated
	} else {
		ind.TTFHours = ttf
		ind.TTFStatus = models.TTFIndicated
	}
	return ind, nil
}
