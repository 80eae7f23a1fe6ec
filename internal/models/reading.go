package models

import "time"

// SensorReading is one tick of instrumentation for a monitored slope site.
type SensorReading struct {
	SiteID string
	At     time.Time

	// Geophone trace for the tick window.
	Waveform Waveform

	// Piezometer head converted to pressure.
	PorePressureKPa float64

	// Extensometer outputs. RateMMPerHour may be zero when the upstream
	// gateway does not derive it; the engine then derives it from the
	// displacement history.
	DisplacementMM float64
	RateMMPerHour  float64

	// Optional per-reading geometry override for benches that differ from
	// the site default. Nil means use the configured site geometry.
	Geometry *SlopeGeometry
}

// Waveform is a raw geophone trace with its sampling rate.
type Waveform struct {
	Samples      []float64
	SampleRateHz float64
}

// SlopeGeometry fixes the infinite-slope model parameters for a bench.
type SlopeGeometry struct {
	SlopeAngleDeg  float64
	UnitWeightKNM3 float64
	FailureDepthM  float64
}

// Strength holds the Mohr-Coulomb material parameters.
type Strength struct {
	CohesionKPa      float64
	FrictionAngleDeg float64

	// SofteningKPaPerMM adds shear stress per millimetre of accumulated
	// displacement. Zero disables softening.
	SofteningKPaPerMM float64
}

// DisplacementPoint is one extensometer observation in a site history.
type DisplacementPoint struct {
	At             time.Time
	DisplacementMM float64
}

// ReadingsQuery bounds a gateway pull for one site.
type ReadingsQuery struct {
	SiteID string
	Start  time.Time
	End    time.Time
	Limit  int
}
