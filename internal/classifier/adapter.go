package classifier

import (
	"fmt"

	"github.com/benchguard/slope-engine/internal/models"
)

// Adapter is the seismic channel: it assembles the feature vector for a
// tick, runs the frozen model, and applies the confidence floor.
type Adapter struct {
	model           Model
	confidenceFloor float64
}

// NewAdapter wraps a frozen model. Confidence below floor marks the verdict
// inconclusive downstream.
func NewAdapter(model Model, confidenceFloor float64) (*Adapter, error) {
	if model == nil {
		return nil, fmt.Errorf("classifier model is required")
	}
	if confidenceFloor < 0 || confidenceFloor > 1 {
		return nil, fmt.Errorf("confidence floor must be in [0, 1], got %v", confidenceFloor)
	}
	return &Adapter{model: model, confidenceFloor: confidenceFloor}, nil
}

// Classify runs the model over the tick's band energies and physics
// context. The feature contract is re-verified on every call; a model whose
// expectations drift from this build is rejected, never silently fed.
func (a *Adapter) Classify(band models.BandEnergy, ind models.Indicators) (models.Classification, error) {
	wanted := a.model.FeatureNames()
	if !sameFeatures(wanted, featureNames) {
		return models.Classification{}, &models.FeatureMismatchError{Wanted: wanted, Got: featureNames}
	}

	vector := []float64{
		band.FractureRatio,
		band.MachineryEnergy,
		band.FractureEnergy,
		band.TotalEnergy,
		ind.FoS,
		ind.PorePressureKPa,
		ind.RateMMPerHour,
	}

	label, confidence, err := a.model.Predict(vector)
	if err != nil {
		return models.Classification{}, fmt.Errorf("seismic model: %w", err)
	}
	switch label {
	case models.LabelBenign, models.LabelMicroFracture, models.LabelMajorFracture:
	default:
		return models.Classification{}, fmt.Errorf("seismic model returned unknown label %q", label)
	}

	return models.Classification{
		Label:        label,
		Confidence:   confidence,
		Inconclusive: confidence < a.confidenceFloor,
	}, nil
}

func sameFeatures(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
