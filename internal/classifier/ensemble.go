package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/benchguard/slope-engine/internal/models"
)

// ensembleFormat is the artifact format this build can load.
const ensembleFormat = "slope-stump-ensemble/v1"

// EnsembleModel is a frozen additive ensemble of decision stumps exported
// from offline training. Per-class logits are summed across stumps and
// squashed with softmax.
type EnsembleModel struct {
	features   []string
	classes    []string
	baseScores []float64
	stumps     []stump
}

type stump struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      []float64 `json:"left"`
	Right     []float64 `json:"right"`
}

type ensembleArtifact struct {
	Format     string    `json:"format"`
	Features   []string  `json:"features"`
	Classes    []string  `json:"classes"`
	BaseScores []float64 `json:"base_scores"`
	Stumps     []stump   `json:"stumps"`
}

// NewEnsembleModel loads and validates a frozen artifact from disk.
func NewEnsembleModel(path string) (*EnsembleModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var artifact ensembleArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := validateArtifact(artifact); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	return &EnsembleModel{
		features:   artifact.Features,
		classes:    artifact.Classes,
		baseScores: artifact.BaseScores,
		stumps:     artifact.Stumps,
	}, nil
}

// FeatureNames returns the artifact's input contract.
func (m *EnsembleModel) FeatureNames() []string {
	return m.features
}

// Predict sums stump logits for the vector and softmaxes them into a label
// and its probability.
func (m *EnsembleModel) Predict(features []float64) (string, float64, error) {
	if len(features) != len(m.features) {
		return "", 0, fmt.Errorf("ensemble expects %d features, got %d", len(m.features), len(features))
	}

	logits := append([]float64(nil), m.baseScores...)
	for _, s := range m.stumps {
		branch := s.Right
		if features[s.Feature] < s.Threshold {
			branch = s.Left
		}
		for c := range logits {
			logits[c] += branch[c]
		}
	}

	probs := softmax(logits)
	best := 0
	for c := range probs {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return m.classes[best], probs[best], nil
}

func validateArtifact(a ensembleArtifact) error {
	if a.Format != ensembleFormat {
		return fmt.Errorf("unsupported format %q, want %q", a.Format, ensembleFormat)
	}
	if len(a.Features) == 0 {
		return fmt.Errorf("no features declared")
	}
	if len(a.Classes) == 0 {
		return fmt.Errorf("no classes declared")
	}
	known := map[string]bool{
		models.LabelBenign:        true,
		models.LabelMicroFracture: true,
		models.LabelMajorFracture: true,
	}
	for _, class := range a.Classes {
		if !known[class] {
			return fmt.Errorf("unknown class %q", class)
		}
	}
	if len(a.BaseScores) != len(a.Classes) {
		return fmt.Errorf("base_scores length %d does not match %d classes", len(a.BaseScores), len(a.Classes))
	}
	for i, s := range a.Stumps {
		if s.Feature < 0 || s.Feature >= len(a.Features) {
			return fmt.Errorf("stump %d references feature %d outside the %d declared", i, s.Feature, len(a.Features))
		}
		if math.IsNaN(s.Threshold) || math.IsInf(s.Threshold, 0) {
			return fmt.Errorf("stump %d has a non-finite threshold", i)
		}
		if len(s.Left) != len(a.Classes) || len(s.Right) != len(a.Classes) {
			return fmt.Errorf("stump %d branch widths do not match %d classes", i, len(a.Classes))
		}
	}
	return nil
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
