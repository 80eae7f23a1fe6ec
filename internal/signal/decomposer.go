package signal

import (
	"fmt"
	"math"

	"github.com/benchguard/slope-engine/internal/models"
)

// ratioEpsilon keeps the fracture ratio defined for silent traces.
const ratioEpsilon = 1e-12

// Decomposer splits geophone traces into machinery-band and fracture-band
// energy. Energy below the low cut-off is attributed to haul trucks and
// drilling; energy above the high cut-off to rock fracture events.
type Decomposer struct {
	lowCutoffHz  float64
	highCutoffHz float64
}

// NewDecomposer validates the band cut-offs and returns a decomposer.
func NewDecomposer(lowCutoffHz, highCutoffHz float64) (*Decomposer, error) {
	if lowCutoffHz <= 0 {
		return nil, fmt.Errorf("low cut-off must be positive, got %v", lowCutoffHz)
	}
	if highCutoffHz <= lowCutoffHz {
		return nil, fmt.Errorf("high cut-off %v must exceed low cut-off %v", highCutoffHz, lowCutoffHz)
	}
	return &Decomposer{lowCutoffHz: lowCutoffHz, highCutoffHz: highCutoffHz}, nil
}

// Decompose validates the waveform and integrates its single-sided spectrum
// into the configured bands. The same trace always yields the same energies.
func (d *Decomposer) Decompose(w models.Waveform) (models.BandEnergy, error) {
	if err := d.validate(w); err != nil {
		return models.BandEnergy{}, err
	}

	n := nextPowerOfTwo(len(w.Samples))
	re := make([]float64, n)
	im := make([]float64, n)
	copy(re, w.Samples)

	fft(re, im)

	// Integrate |X(k)|^2 over the single-sided spectrum. Interior bins carry
	// their conjugate twins, so they count twice; DC and Nyquist once.
	binHz := w.SampleRateHz / float64(n)
	var machinery, fracture, total float64
	for k := 0; k <= n/2; k++ {
		power := (re[k]*re[k] + im[k]*im[k]) / float64(n)
		if k != 0 && k != n/2 {
			power *= 2
		}

		freq := float64(k) * binHz
		total += power
		switch {
		case freq < d.lowCutoffHz:
			machinery += power
		case freq >= d.highCutoffHz:
			fracture += power
		}
	}

	return models.BandEnergy{
		LowCutoffHz:     d.lowCutoffHz,
		HighCutoffHz:    d.highCutoffHz,
		MachineryEnergy: machinery,
		FractureEnergy:  fracture,
		TotalEnergy:     total,
		FractureRatio:   fracture / (total + ratioEpsilon),
	}, nil
}

func (d *Decomposer) validate(w models.Waveform) error {
	if len(w.Samples) == 0 {
		return &models.InvalidSignalError{Reason: "empty waveform"}
	}
	if w.SampleRateHz <= 0 {
		return &models.InvalidSignalError{Reason: fmt.Sprintf("sample rate must be positive, got %v", w.SampleRateHz)}
	}
	if nyquist := w.SampleRateHz / 2; d.highCutoffHz > nyquist {
		return &models.InvalidSignalError{
			Reason: fmt.Sprintf("sample rate %v Hz cannot resolve the %v Hz fracture band", w.SampleRateHz, d.highCutoffHz),
		}
	}
	for i, s := range w.Samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return &models.InvalidSignalError{Reason: fmt.Sprintf("non-finite sample at index %d", i)}
		}
	}
	return nil
}
