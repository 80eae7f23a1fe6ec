package models

// BandEnergy is the spectral decomposition of one waveform tick.
type BandEnergy struct {
	LowCutoffHz  float64
	HighCutoffHz float64

	MachineryEnergy float64
	FractureEnergy  float64
	TotalEnergy     float64

	// FractureRatio is FractureEnergy over TotalEnergy, zero for a silent
	// trace.
	FractureRatio float64
}

// Indicators bundles the physics channel outputs for a tick.
type Indicators struct {
	FoS                  float64
	NormalStressKPa      float64
	EffectiveStressKPa   float64
	ShearStressKPa       float64
	PorePressureKPa      float64
	RateMMPerHour        float64
	InverseVelocitySlope float64

	// TTFHours is nil when the displacement trend does not indicate an
	// approaching failure (decelerating or steady movement).
	TTFHours *float64

	// TTFStatus explains a nil TTFHours: "not_indicated" or
	// "insufficient_history".
	TTFStatus string
}

// Classification is the seismic channel's verdict for a tick.
type Classification struct {
	Label      string
	Confidence float64

	// Inconclusive marks confidence below the configured floor. The label
	// is retained for the record; fusion ignores it and votes WATCH.
	Inconclusive bool
}

// Seismic classification labels emitted by the frozen model.
const (
	LabelBenign        = "benign"
	LabelMicroFracture = "micro_fracture"
	LabelMajorFracture = "major_fracture"
)

// TTF status values carried on Indicators.
const (
	TTFNotIndicated        = "not_indicated"
	TTFIndicated           = "indicated"
	TTFInsufficientHistory = "insufficient_history"
)
