package repo

import (
	"math"
	"reflect"
	"testing"
	"time"
)

var scenarioEpoch = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func newScenario(t *testing.T, name string) *ScenarioSource {
	t.Helper()
	src, err := NewScenarioSource(name, 42, scenarioEpoch, 10*time.Minute)
	if err != nil {
		t.Fatalf("NewScenarioSource(%s): %v", name, err)
	}
	return src
}

func TestScenarioReadingsAreDeterministic(t *testing.T) {
	a := newScenario(t, ScenarioSeismic)
	b := newScenario(t, ScenarioSeismic)

	// Read out of order on one source to prove call order does not matter.
	b.ReadingAt("pit-a", 90)
	b.ReadingAt("pit-b", 7)

	for _, tick := range []int{0, 7, 41, 90} {
		first := a.ReadingAt("pit-a", tick)
		second := b.ReadingAt("pit-a", tick)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("tick %d not reproducible", tick)
		}
	}

	other := a.ReadingAt("pit-b", 7)
	same := a.ReadingAt("pit-a", 7)
	if reflect.DeepEqual(other.Waveform.Samples, same.Waveform.Samples) {
		t.Fatal("different sites should draw different noise")
	}
}

func TestScenarioTickStreamsDecorrelated(t *testing.T) {
	src := newScenario(t, ScenarioStable)

	// Adjacent ticks, tick zero included, must draw distinct noise: the
	// per-tick seed mix covers the full tick range, not just late ticks.
	prev := src.ReadingAt("pit-a", 0)
	for tick := 1; tick <= 8; tick++ {
		cur := src.ReadingAt("pit-a", tick)
		if reflect.DeepEqual(prev.Waveform.Samples, cur.Waveform.Samples) {
			t.Fatalf("ticks %d and %d drew identical noise", tick-1, tick)
		}
		prev = cur
	}
}

func TestScenarioStableStaysNominal(t *testing.T) {
	src := newScenario(t, ScenarioStable)
	for tick := 0; tick <= 72; tick++ {
		r := src.ReadingAt("pit-a", tick)
		if r.PorePressureKPa < 20 || r.PorePressureKPa > 40 {
			t.Fatalf("tick %d pore pressure %.1f out of nominal range", tick, r.PorePressureKPa)
		}
		if r.RateMMPerHour != creepRateMMH {
			t.Fatalf("tick %d rate %.3f, want creep", tick, r.RateMMPerHour)
		}
		if len(r.Waveform.Samples) != traceSamples || r.Waveform.SampleRateHz != traceRateHz {
			t.Fatalf("tick %d trace malformed", tick)
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("tick %d reading invalid: %v", tick, err)
		}
	}
}

func TestScenarioMonsoonRampsAfterOnset(t *testing.T) {
	src := newScenario(t, ScenarioMonsoon)

	before := src.ReadingAt("pit-a", 36) // hour 6
	if before.PorePressureKPa > 40 {
		t.Fatalf("pore pressure %.1f ramped before onset", before.PorePressureKPa)
	}
	if before.RateMMPerHour != creepRateMMH {
		t.Fatalf("rate %.3f ramped before onset", before.RateMMPerHour)
	}

	at18 := src.ReadingAt("pit-a", 108) // hour 18
	if at18.PorePressureKPa < 85 {
		t.Fatalf("pore pressure %.1f too low six hours into the ramp", at18.PorePressureKPa)
	}
	if at18.RateMMPerHour < 0.5 {
		t.Fatalf("displacement rate %.2f too low six hours into the ramp", at18.RateMMPerHour)
	}
	if at18.DisplacementMM <= before.DisplacementMM {
		t.Fatal("displacement should accumulate through the ramp")
	}

	at30 := src.ReadingAt("pit-a", 180) // hour 30
	if at30.PorePressureKPa < rampCapKPa-5 {
		t.Fatalf("pore pressure %.1f should sit near the cap late in the storm", at30.PorePressureKPa)
	}
}

func TestScenarioSeismicInjectsBursts(t *testing.T) {
	src := newScenario(t, ScenarioSeismic)

	bursts := 0
	prev := src.ReadingAt("pit-a", 35)
	for tick := 36; tick <= 144; tick++ {
		r := src.ReadingAt("pit-a", tick)
		if r.DisplacementMM-prev.DisplacementMM > burstStepMM/2 {
			bursts++
		}
		prev = r
	}
	if bursts == 0 {
		t.Fatal("expected at least one burst between hours 6 and 24")
	}

	quiet := src.ReadingAt("pit-a", 12) // hour 2, before bursts start
	if rms(quiet.Waveform.Samples) > 1.5 {
		t.Fatalf("pre-burst trace too hot: rms %.2f", rms(quiet.Waveform.Samples))
	}
}

func TestScenarioWindow(t *testing.T) {
	src := newScenario(t, ScenarioStable)

	start := scenarioEpoch.Add(25 * time.Minute)
	end := scenarioEpoch.Add(65 * time.Minute)
	readings := src.Window("pit-a", start, end, 0)
	if len(readings) != 4 {
		t.Fatalf("expected 4 readings in window, got %d", len(readings))
	}
	if !readings[0].At.Equal(scenarioEpoch.Add(30 * time.Minute)) {
		t.Fatalf("first reading at %v, want epoch+30m", readings[0].At)
	}
	if !readings[3].At.Equal(scenarioEpoch.Add(60 * time.Minute)) {
		t.Fatalf("last reading at %v, want epoch+60m", readings[3].At)
	}

	capped := src.Window("pit-a", start, end, 2)
	if len(capped) != 2 {
		t.Fatalf("expected limit to cap window, got %d", len(capped))
	}

	if got := src.Window("pit-a", end, start, 0); got != nil {
		t.Fatalf("inverted window should be empty, got %d", len(got))
	}

	early := src.Window("pit-a", scenarioEpoch.Add(-time.Hour), scenarioEpoch.Add(5*time.Minute), 0)
	if len(early) != 1 || !early[0].At.Equal(scenarioEpoch) {
		t.Fatalf("window before epoch should clamp to tick zero, got %d", len(early))
	}
}

func TestNewScenarioSourceRejectsUnknownName(t *testing.T) {
	if _, err := NewScenarioSource("landslide-bingo", 1, scenarioEpoch, time.Minute); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	if _, err := NewScenarioSource(ScenarioStable, 1, time.Time{}, time.Minute); err == nil {
		t.Fatal("expected error for zero epoch")
	}
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}
