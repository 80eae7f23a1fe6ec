package physics

import (
	"fmt"
	"math"

	"github.com/benchguard/slope-engine/internal/models"
)

// Stresses carries the infinite-slope stress state behind a factor of
// safety, after pore-pressure clamping.
type Stresses struct {
	NormalKPa    float64
	EffectiveKPa float64
	ShearKPa     float64
	PoreKPa      float64
	FoS          float64
}

// FactorOfSafety evaluates Mohr-Coulomb limit equilibrium for an infinite
// slope. Pore pressure is clamped into [0, total normal stress] before the
// Terzaghi correction, so raising it can only lower the result.
func FactorOfSafety(geom models.SlopeGeometry, strength models.Strength, poreKPa, displacementMM float64) (Stresses, error) {
	if err := validateGeometry(geom); err != nil {
		return Stresses{}, err
	}
	if err := validateStrength(strength); err != nil {
		return Stresses{}, err
	}

	beta := geom.SlopeAngleDeg * math.Pi / 180
	overburden := geom.UnitWeightKNM3 * geom.FailureDepthM

	normal := overburden * math.Cos(beta) * math.Cos(beta)
	shear := overburden * math.Sin(beta) * math.Cos(beta)

	// Accumulated movement shears the failure surface harder once the
	// material softens. Negative displacement never relaxes the slope.
	if strength.SofteningKPaPerMM > 0 && displacementMM > 0 {
		shear += strength.SofteningKPaPerMM * displacementMM
	}

	pore := math.Min(math.Max(poreKPa, 0), normal)
	effective := normal - pore

	phi := strength.FrictionAngleDeg * math.Pi / 180
	fos := (strength.CohesionKPa + effective*math.Tan(phi)) / shear

	return Stresses{
		NormalKPa:    normal,
		EffectiveKPa: effective,
		ShearKPa:     shear,
		PoreKPa:      pore,
		FoS:          fos,
	}, nil
}

func validateGeometry(geom models.SlopeGeometry) error {
	if geom.SlopeAngleDeg <= 0 || geom.SlopeAngleDeg >= 90 {
		return fmt.Errorf("slope angle must be in (0, 90) degrees, got %v", geom.SlopeAngleDeg)
	}
	if geom.UnitWeightKNM3 <= 0 {
		return fmt.Errorf("unit weight must be positive, got %v", geom.UnitWeightKNM3)
	}
	if geom.FailureDepthM <= 0 {
		return fmt.Errorf("failure depth must be positive, got %v", geom.FailureDepthM)
	}
	return nil
}

func validateStrength(strength models.Strength) error {
	if strength.CohesionKPa < 0 {
		return fmt.Errorf("cohesion must be non-negative, got %v", strength.CohesionKPa)
	}
	if strength.FrictionAngleDeg < 0 || strength.FrictionAngleDeg >= 90 {
		return fmt.Errorf("friction angle must be in [0, 90) degrees, got %v", strength.FrictionAngleDeg)
	}
	if strength.SofteningKPaPerMM < 0 {
		return fmt.Errorf("softening coefficient must be non-negative, got %v", strength.SofteningKPaPerMM)
	}
	return nil
}
