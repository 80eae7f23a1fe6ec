package models

import "math"

// Validate rejects readings that must not reach the analysis channels.
// Waveform content is validated separately by the decomposer; this guards
// identity and scalar sanity.
func (r SensorReading) Validate() error {
	if r.SiteID == "" {
		return &MalformedReadingError{Field: "site_id", Reason: "required"}
	}
	if r.At.IsZero() {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "at", Reason: "timestamp required"}
	}
	if !isFinite(r.PorePressureKPa) {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "pore_pressure_kpa", Reason: "must be finite"}
	}
	if !isFinite(r.DisplacementMM) {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "displacement_mm", Reason: "must be finite"}
	}
	if !isFinite(r.RateMMPerHour) {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "rate_mm_h", Reason: "must be finite"}
	}
	if len(r.Waveform.Samples) == 0 {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "waveform", Reason: "samples required"}
	}
	if r.Waveform.SampleRateHz <= 0 || !isFinite(r.Waveform.SampleRateHz) {
		return &MalformedReadingError{SiteID: r.SiteID, Field: "waveform.sample_rate_hz", Reason: "must be positive"}
	}
	if g := r.Geometry; g != nil {
		if !isFinite(g.SlopeAngleDeg) || !isFinite(g.UnitWeightKNM3) || !isFinite(g.FailureDepthM) {
			return &MalformedReadingError{SiteID: r.SiteID, Field: "geometry", Reason: "must be finite"}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
