package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/benchguard/slope-engine/internal/classifier"
	"github.com/benchguard/slope-engine/internal/fusion"
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/physics"
	"github.com/benchguard/slope-engine/internal/repo"
	"github.com/benchguard/slope-engine/internal/signal"
)

var tickEpoch = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

type dispatchCall struct {
	site string
	tr   models.Transition
}

type stubDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (d *stubDispatcher) Dispatch(_ context.Context, siteID string, tr models.Transition, _ []models.ChannelOpinion) []models.DispatchRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatchCall{site: siteID, tr: tr})
	return nil
}

func (d *stubDispatcher) snapshot() []dispatchCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]dispatchCall, len(d.calls))
	copy(out, d.calls)
	return out
}

func newTestEngine(t *testing.T, dispatcher AlarmDispatcher, opts Options) *Engine {
	t.Helper()
	decomposer, err := signal.NewDecomposer(50, 2000)
	if err != nil {
		t.Fatalf("new decomposer: %v", err)
	}
	analyzer, err := physics.NewAnalyzer(
		models.SlopeGeometry{SlopeAngleDeg: 35, UnitWeightKNM3: 20, FailureDepthM: 10},
		models.Strength{CohesionKPa: 65, FrictionAngleDeg: 38},
		3,
	)
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}
	seismic, err := classifier.NewAdapter(classifier.NewSpectralHeuristic(), 0.6)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng, err := NewEngine(logger, decomposer, analyzer, seismic, fusion.DefaultPolicy(), dispatcher, opts)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return eng
}

// testTrace builds a bin-aligned trace: a machinery hum plus, optionally, a
// fracture-band tone that dominates the spectrum.
func testTrace(burst bool) models.Waveform {
	samples := make([]float64, 512)
	for i := range samples {
		ts := float64(i) / 4096.0
		v := math.Sin(2 * math.Pi * 24 * ts)
		if burst {
			v += 3 * math.Sin(2*math.Pi*2040*ts)
		}
		samples[i] = v
	}
	return models.Waveform{Samples: samples, SampleRateHz: 4096}
}

// watchTrace tunes the fracture tone so the energy ratio lands in the WATCH
// band.
func watchTrace() models.Waveform {
	amp := math.Sqrt(0.6) // ratio a^2/(1+a^2) = 0.375
	samples := make([]float64, 512)
	for i := range samples {
		ts := float64(i) / 4096.0
		samples[i] = math.Sin(2*math.Pi*24*ts) + amp*math.Sin(2*math.Pi*2040*ts)
	}
	return models.Waveform{Samples: samples, SampleRateHz: 4096}
}

func quietReading(site string, tick int) models.SensorReading {
	hours := float64(tick) / 6
	return models.SensorReading{
		SiteID:          site,
		At:              tickEpoch.Add(time.Duration(tick) * 10 * time.Minute),
		Waveform:        testTrace(false),
		PorePressureKPa: 30,
		DisplacementMM:  0.02 * hours,
		RateMMPerHour:   0.02,
	}
}

func burstReading(site string, tick int) models.SensorReading {
	r := quietReading(site, tick)
	r.Waveform = testTrace(true)
	return r
}

func mustEvaluate(t *testing.T, eng *Engine, r models.SensorReading) *models.TickRecord {
	t.Helper()
	record, err := eng.EvaluateTick(context.Background(), r)
	if err != nil {
		t.Fatalf("evaluate tick at %v: %v", r.At, err)
	}
	return record
}

func TestStableScenarioStaysSafeFromFirstTick(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})
	src, err := repo.NewScenarioSource(repo.ScenarioStable, 42, tickEpoch, 10*time.Minute)
	if err != nil {
		t.Fatalf("new scenario: %v", err)
	}

	for tick := 0; tick <= 72; tick++ {
		record := mustEvaluate(t, eng, src.ReadingAt("pit-a", tick))
		if record.Level != models.AlertSafe {
			t.Fatalf("tick %d level %s, want SAFE (candidate %s)", tick, record.Level, record.FusedCandidate)
		}
	}

	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if records[0].Physics.TTFStatus != models.TTFInsufficientHistory {
		t.Fatalf("first tick should await history, got %q", records[0].Physics.TTFStatus)
	}
	last := records[len(records)-1]
	if last.Physics.TTFStatus == models.TTFInsufficientHistory {
		t.Fatalf("history never became sufficient")
	}
	if last.Physics.FoS < 1.3 {
		t.Fatalf("stable site FoS %.3f dropped below safe band", last.Physics.FoS)
	}
}

func TestMonsoonScenarioEscalatesThroughWarning(t *testing.T) {
	dispatcher := &stubDispatcher{}
	eng := newTestEngine(t, dispatcher, Options{DeescalateTicks: 3})
	src, err := repo.NewScenarioSource(repo.ScenarioMonsoon, 42, tickEpoch, 10*time.Minute)
	if err != nil {
		t.Fatalf("new scenario: %v", err)
	}

	var at18 *models.TickRecord
	var last *models.TickRecord
	for tick := 0; tick <= 144; tick++ {
		record := mustEvaluate(t, eng, src.ReadingAt("pit-a", tick))
		if tick == 36 && record.Level != models.AlertSafe {
			t.Fatalf("hour 6 should still be SAFE, got %s", record.Level)
		}
		if tick == 108 {
			at18 = record
		}
		last = record
	}

	if at18.FusedCandidate < models.AlertWarning {
		t.Fatalf("hour 18 candidate %s, want at least WARNING", at18.FusedCandidate)
	}
	if at18.Level < models.AlertWarning {
		t.Fatalf("hour 18 level %s, want at least WARNING", at18.Level)
	}
	if last.Level != models.AlertCritical {
		t.Fatalf("hour 24 level %s, want CRITICAL (FoS %.3f)", last.Level, last.Physics.FoS)
	}

	eng.Close()
	calls := dispatcher.snapshot()
	if len(calls) == 0 {
		t.Fatal("escalations should have been dispatched")
	}
	for _, call := range calls {
		if call.site != "pit-a" || !call.tr.Changed {
			t.Fatalf("unexpected dispatch call: %+v", call)
		}
	}
}

func TestSeismicScenarioFlagsMajorFracture(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})
	src, err := repo.NewScenarioSource(repo.ScenarioSeismic, 42, tickEpoch, 10*time.Minute)
	if err != nil {
		t.Fatalf("new scenario: %v", err)
	}

	majors := 0
	for tick := 0; tick <= 144; tick++ {
		record := mustEvaluate(t, eng, src.ReadingAt("pit-a", tick))
		if record.Seismic.Label == models.LabelMajorFracture && !record.Seismic.Inconclusive {
			majors++
			if record.Level < models.AlertWarning {
				t.Fatalf("tick %d: confident major fracture but level %s", tick, record.Level)
			}
		}
	}
	if majors == 0 {
		t.Fatal("seismic scenario produced no major fracture classifications")
	}
}

func TestEscalationIsImmediateAndDeescalationHeld(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	record := mustEvaluate(t, eng, quietReading("pit-a", 0))
	if record.Level != models.AlertSafe {
		t.Fatalf("quiet tick level %s, want SAFE", record.Level)
	}

	record = mustEvaluate(t, eng, burstReading("pit-a", 1))
	if record.Level != models.AlertCritical || !record.Transition.Escalated {
		t.Fatalf("burst should escalate immediately, got %+v", record.Transition)
	}

	// Two quiet ticks hold the level, the third completes probation.
	record = mustEvaluate(t, eng, quietReading("pit-a", 2))
	if record.Level != models.AlertCritical || record.Transition.ProbationTicks != 1 {
		t.Fatalf("first quiet tick: %+v", record.Transition)
	}
	record = mustEvaluate(t, eng, quietReading("pit-a", 3))
	if record.Level != models.AlertCritical || record.Transition.ProbationTicks != 2 {
		t.Fatalf("second quiet tick: %+v", record.Transition)
	}
	record = mustEvaluate(t, eng, quietReading("pit-a", 4))
	if record.Level != models.AlertSafe || !record.Transition.Changed || record.Transition.Escalated {
		t.Fatalf("third quiet tick should drop to SAFE: %+v", record.Transition)
	}
}

func TestDeescalationDropsToWorstOfWindow(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	mustEvaluate(t, eng, burstReading("pit-a", 0))

	watch := quietReading("pit-a", 1)
	watch.Waveform = watchTrace()
	record := mustEvaluate(t, eng, watch)
	if record.FusedCandidate != models.AlertWatch {
		t.Fatalf("watch trace graded %s, want WATCH", record.FusedCandidate)
	}

	mustEvaluate(t, eng, quietReading("pit-a", 2))
	record = mustEvaluate(t, eng, quietReading("pit-a", 3))
	if record.Level != models.AlertWatch {
		t.Fatalf("window [WATCH SAFE SAFE] should settle on WATCH, got %s", record.Level)
	}
}

func TestChannelErrorLeavesStateUntouched(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	mustEvaluate(t, eng, burstReading("pit-a", 0))

	// 1 kHz sampling cannot resolve the 2 kHz fracture band.
	bad := quietReading("pit-a", 1)
	bad.Waveform = models.Waveform{Samples: []float64{0.1, 0.2, 0.3, 0.4}, SampleRateHz: 1000}
	if _, err := eng.EvaluateTick(context.Background(), bad); err == nil {
		t.Fatal("expected signal channel failure")
	} else {
		var sigErr *models.InvalidSignalError
		if !errors.As(err, &sigErr) {
			t.Fatalf("expected InvalidSignalError, got %v", err)
		}
	}

	state, err := eng.AlertState("pit-a")
	if err != nil {
		t.Fatalf("alert state: %v", err)
	}
	if state.Level != models.AlertCritical {
		t.Fatalf("failed tick must not move the level, got %s", state.Level)
	}
	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("failed tick must not be recorded, got %d records", len(records))
	}

	// The failed tick must not consume the timestamp either.
	record := mustEvaluate(t, eng, quietReading("pit-a", 1))
	if record.Level != models.AlertCritical {
		t.Fatalf("recovery tick level %s, want held CRITICAL", record.Level)
	}
}

func TestStaleTimestampRejected(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	mustEvaluate(t, eng, quietReading("pit-a", 1))

	var malformed *models.MalformedReadingError
	if _, err := eng.EvaluateTick(context.Background(), quietReading("pit-a", 1)); !errors.As(err, &malformed) {
		t.Fatalf("duplicate timestamp should be malformed, got %v", err)
	}
	if _, err := eng.EvaluateTick(context.Background(), quietReading("pit-a", 0)); !errors.As(err, &malformed) {
		t.Fatalf("stale timestamp should be malformed, got %v", err)
	}

	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("rejected readings must not be recorded, got %d", len(records))
	}
}

func TestMalformedReadingRejected(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	var malformed *models.MalformedReadingError

	missing := quietReading("", 0)
	if _, err := eng.EvaluateTick(context.Background(), missing); !errors.As(err, &malformed) {
		t.Fatalf("missing site should be malformed, got %v", err)
	}

	nan := quietReading("pit-a", 0)
	nan.PorePressureKPa = math.NaN()
	if _, err := eng.EvaluateTick(context.Background(), nan); !errors.As(err, &malformed) {
		t.Fatalf("NaN pore pressure should be malformed, got %v", err)
	}
	if malformed.Field != "pore_pressure_kpa" {
		t.Fatalf("unexpected field: %s", malformed.Field)
	}

	if _, err := eng.AlertState("pit-a"); !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("rejected readings must not create a session, got %v", err)
	}
}

func TestSitesAreIsolated(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	mustEvaluate(t, eng, burstReading("pit-a", 0))
	mustEvaluate(t, eng, quietReading("pit-b", 0))

	stateA, err := eng.AlertState("pit-a")
	if err != nil {
		t.Fatalf("alert state pit-a: %v", err)
	}
	stateB, err := eng.AlertState("pit-b")
	if err != nil {
		t.Fatalf("alert state pit-b: %v", err)
	}
	if stateA.Level != models.AlertCritical || stateB.Level != models.AlertSafe {
		t.Fatalf("sites leaked state: pit-a=%s pit-b=%s", stateA.Level, stateB.Level)
	}

	if _, err := eng.AlertState("pit-c"); !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("expected unknown site, got %v", err)
	}

	ids := eng.SiteIDs()
	if len(ids) != 2 || ids[0] != "pit-a" || ids[1] != "pit-b" {
		t.Fatalf("unexpected site ids: %v", ids)
	}
}

func TestAlertStateTracksTransitions(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	first := mustEvaluate(t, eng, quietReading("pit-a", 0))
	state, err := eng.AlertState("pit-a")
	if err != nil {
		t.Fatalf("alert state: %v", err)
	}
	if !state.Since.Equal(first.At) || state.LastChange != nil {
		t.Fatalf("fresh site state wrong: %+v", state)
	}

	escalated := mustEvaluate(t, eng, burstReading("pit-a", 1))
	state, err = eng.AlertState("pit-a")
	if err != nil {
		t.Fatalf("alert state: %v", err)
	}
	if !state.Since.Equal(escalated.At) {
		t.Fatalf("Since %v, want escalation time %v", state.Since, escalated.At)
	}
	if state.LastChange == nil || state.LastChange.To != models.AlertCritical {
		t.Fatalf("LastChange wrong: %+v", state.LastChange)
	}
}

func TestHistoryBoundsHold(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3, DisplacementHistory: 8, TickHistory: 4})

	for tick := 0; tick < 12; tick++ {
		mustEvaluate(t, eng, quietReading("pit-a", tick))
	}

	session, err := eng.lookup("pit-a")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(session.history) != 8 {
		t.Fatalf("displacement history %d points, want 8", len(session.history))
	}

	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("tick ring %d records, want 4", len(records))
	}
	if !records[len(records)-1].At.After(records[0].At) {
		t.Fatal("tick records out of order")
	}
}

func TestSummaryReflectsSession(t *testing.T) {
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})

	for tick := 0; tick < 10; tick++ {
		mustEvaluate(t, eng, quietReading("pit-a", tick))
	}

	summary, err := eng.Summary("pit-a")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Ticks != 10 || summary.CurrentLevel != models.AlertSafe {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.MinFoS < 1.55 || summary.MinFoS > 1.57 {
		t.Fatalf("MinFoS %.4f outside expected band", summary.MinFoS)
	}
	if summary.TicksByLevel["SAFE"] != 10 {
		t.Fatalf("level counts wrong: %v", summary.TicksByLevel)
	}

	if _, err := eng.Summary("pit-z"); !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("expected unknown site, got %v", err)
	}
}

func TestDispatchOnlyOnChange(t *testing.T) {
	dispatcher := &stubDispatcher{}
	eng := newTestEngine(t, dispatcher, Options{DeescalateTicks: 3})

	mustEvaluate(t, eng, quietReading("pit-a", 0))
	mustEvaluate(t, eng, burstReading("pit-a", 1))
	mustEvaluate(t, eng, burstReading("pit-a", 2))
	eng.Close()

	calls := dispatcher.snapshot()
	if len(calls) != 1 {
		t.Fatalf("expected a single dispatch for the escalation, got %d", len(calls))
	}
	if calls[0].tr.To != models.AlertCritical || !calls[0].tr.Escalated {
		t.Fatalf("unexpected transition dispatched: %+v", calls[0].tr)
	}
}
