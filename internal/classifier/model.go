package classifier

// Model is a frozen seismic classifier. Implementations never learn
// online; they map a fixed feature vector to a label and a confidence.
type Model interface {
	// FeatureNames returns the input contract in order. Callers verify it
	// against their assembly on every classification.
	FeatureNames() []string
	Predict(features []float64) (label string, confidence float64, err error)
}

// featureNames is the frozen assembly order for seismic feature vectors.
// Changing it breaks every trained artifact, so it never changes within a
// format version.
var featureNames = []string{
	"fracture_ratio",
	"machinery_energy",
	"fracture_energy",
	"total_energy",
	"fos",
	"pore_pressure_kpa",
	"displacement_rate_mm_h",
}

// Feature vector indexes matching featureNames.
const (
	idxFractureRatio = iota
	idxMachineryEnergy
	idxFractureEnergy
	idxTotalEnergy
	idxFoS
	idxPorePressure
	idxDisplacementRate
)
