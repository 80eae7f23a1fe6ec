package classifier

import (
	"fmt"

	"github.com/benchguard/slope-engine/internal/models"
)

// SpectralHeuristic is a rule-based stand-in model keyed on the fracture
// ratio. It keeps the engine operable when no trained artifact is deployed;
// production sites load an EnsembleModel instead.
type SpectralHeuristic struct {
	// EnergyFloor is the total band energy below which a trace is treated
	// as silence and classified benign outright.
	EnergyFloor float64
}

// NewSpectralHeuristic applies the default silence floor.
func NewSpectralHeuristic() SpectralHeuristic {
	return SpectralHeuristic{EnergyFloor: 1e-6}
}

// FeatureNames returns the frozen assembly order.
func (SpectralHeuristic) FeatureNames() []string {
	return featureNames
}

// Predict grades the fracture ratio into the three seismic labels.
func (h SpectralHeuristic) Predict(features []float64) (string, float64, error) {
	if len(features) != len(featureNames) {
		return "", 0, fmt.Errorf("heuristic expects %d features, got %d", len(featureNames), len(features))
	}

	ratio := features[idxFractureRatio]
	total := features[idxTotalEnergy]

	if total < h.EnergyFloor {
		return models.LabelBenign, 0.99, nil
	}

	switch {
	case ratio >= 0.70:
		return models.LabelMajorFracture, 0.65 + 0.3*unitClamp((ratio-0.70)/0.30), nil
	case ratio >= 0.35:
		return models.LabelMicroFracture, 0.60 + 0.3*unitClamp((ratio-0.35)/0.35), nil
	default:
		return models.LabelBenign, 0.95 - 0.5*unitClamp(ratio/0.35), nil
	}
}

func unitClamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
