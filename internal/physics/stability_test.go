package physics

import (
	"math"
	"testing"

	"github.com/benchguard/slope-engine/internal/models"
)

var (
	benchGeom = models.SlopeGeometry{
		SlopeAngleDeg:  45,
		UnitWeightKNM3: 20,
		FailureDepthM:  10,
	}
	benchStrength = models.Strength{
		CohesionKPa:      25,
		FrictionAngleDeg: 30,
	}
)

func TestFactorOfSafetyKnownValue(t *testing.T) {
	// 45 degree slope, 200 kPa overburden: normal and shear both 100 kPa.
	stresses, err := FactorOfSafety(benchGeom, benchStrength, 0, 0)
	if err != nil {
		t.Fatalf("factor of safety: %v", err)
	}

	if math.Abs(stresses.NormalKPa-100) > 1e-9 {
		t.Fatalf("expected normal stress 100 kPa, got %v", stresses.NormalKPa)
	}
	if math.Abs(stresses.ShearKPa-100) > 1e-9 {
		t.Fatalf("expected shear stress 100 kPa, got %v", stresses.ShearKPa)
	}

	want := (25 + 100*math.Tan(30*math.Pi/180)) / 100
	if math.Abs(stresses.FoS-want) > 1e-9 {
		t.Fatalf("expected FoS %v, got %v", want, stresses.FoS)
	}
}

func TestFactorOfSafetyZeroPoreIsIdentity(t *testing.T) {
	stresses, err := FactorOfSafety(benchGeom, benchStrength, 0, 0)
	if err != nil {
		t.Fatalf("factor of safety: %v", err)
	}
	if stresses.EffectiveKPa != stresses.NormalKPa {
		t.Fatalf("zero pore pressure must leave effective stress untouched: %v != %v", stresses.EffectiveKPa, stresses.NormalKPa)
	}
}

func TestFactorOfSafetyMonotoneInPorePressure(t *testing.T) {
	pores := []float64{0, 10, 25, 50, 75, 99, 150, 1e6}
	prev := math.Inf(1)
	for _, pore := range pores {
		stresses, err := FactorOfSafety(benchGeom, benchStrength, pore, 0)
		if err != nil {
			t.Fatalf("pore %v: %v", pore, err)
		}
		if stresses.FoS > prev {
			t.Fatalf("FoS rose from %v to %v as pore pressure increased to %v", prev, stresses.FoS, pore)
		}
		prev = stresses.FoS
	}
}

func TestFactorOfSafetyClampsPorePressure(t *testing.T) {
	flooded, err := FactorOfSafety(benchGeom, benchStrength, 1e9, 0)
	if err != nil {
		t.Fatalf("flooded: %v", err)
	}
	if flooded.EffectiveKPa != 0 {
		t.Fatalf("expected fully clamped effective stress, got %v", flooded.EffectiveKPa)
	}
	if flooded.PoreKPa != flooded.NormalKPa {
		t.Fatalf("expected pore clamped to normal stress, got %v vs %v", flooded.PoreKPa, flooded.NormalKPa)
	}

	dry, err := FactorOfSafety(benchGeom, benchStrength, 0, 0)
	if err != nil {
		t.Fatalf("dry: %v", err)
	}
	suction, err := FactorOfSafety(benchGeom, benchStrength, -40, 0)
	if err != nil {
		t.Fatalf("suction: %v", err)
	}
	if suction != dry {
		t.Fatalf("negative pore pressure must clamp to zero: %+v vs %+v", suction, dry)
	}
}

func TestFactorOfSafetySofteningLowersFoS(t *testing.T) {
	softening := benchStrength
	softening.SofteningKPaPerMM = 2

	moved, err := FactorOfSafety(benchGeom, softening, 0, 10)
	if err != nil {
		t.Fatalf("moved: %v", err)
	}
	if math.Abs(moved.ShearKPa-120) > 1e-9 {
		t.Fatalf("expected softened shear 120 kPa, got %v", moved.ShearKPa)
	}

	still, err := FactorOfSafety(benchGeom, softening, 0, 0)
	if err != nil {
		t.Fatalf("still: %v", err)
	}
	if moved.FoS >= still.FoS {
		t.Fatalf("expected accumulated movement to lower FoS: %v vs %v", moved.FoS, still.FoS)
	}

	retracted, err := FactorOfSafety(benchGeom, softening, 0, -5)
	if err != nil {
		t.Fatalf("retracted: %v", err)
	}
	if retracted != still {
		t.Fatalf("negative displacement must not relax the slope: %+v vs %+v", retracted, still)
	}
}

func TestFactorOfSafetyRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name     string
		geom     models.SlopeGeometry
		strength models.Strength
	}{
		{"flat slope", models.SlopeGeometry{SlopeAngleDeg: 0, UnitWeightKNM3: 20, FailureDepthM: 10}, benchStrength},
		{"vertical slope", models.SlopeGeometry{SlopeAngleDeg: 90, UnitWeightKNM3: 20, FailureDepthM: 10}, benchStrength},
		{"zero unit weight", models.SlopeGeometry{SlopeAngleDeg: 45, UnitWeightKNM3: 0, FailureDepthM: 10}, benchStrength},
		{"zero depth", models.SlopeGeometry{SlopeAngleDeg: 45, UnitWeightKNM3: 20, FailureDepthM: 0}, benchStrength},
		{"negative cohesion", benchGeom, models.Strength{CohesionKPa: -1, FrictionAngleDeg: 30}},
		{"friction at 90", benchGeom, models.Strength{CohesionKPa: 25, FrictionAngleDeg: 90}},
		{"negative softening", benchGeom, models.Strength{CohesionKPa: 25, FrictionAngleDeg: 30, SofteningKPaPerMM: -1}},
	}
	for _, tc := range cases {
		if _, err := FactorOfSafety(tc.geom, tc.strength, 0, 0); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
