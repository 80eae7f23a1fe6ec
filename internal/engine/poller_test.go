package engine

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

type stubSource struct {
	mu       sync.Mutex
	readings map[string][]models.SensorReading
	skipped  map[string]int
	failSite string
	failErr  error
	queries  []models.ReadingsQuery
}

func (s *stubSource) FetchReadings(_ context.Context, q models.ReadingsQuery) ([]models.SensorReading, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if q.SiteID == s.failSite {
		return nil, 0, s.failErr
	}
	return s.readings[q.SiteID], s.skipped[q.SiteID], nil
}

func (s *stubSource) lastQuery(t *testing.T, site string) models.ReadingsQuery {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.queries) - 1; i >= 0; i-- {
		if s.queries[i].SiteID == site {
			return s.queries[i]
		}
	}
	t.Fatalf("no query recorded for %s", site)
	return models.ReadingsQuery{}
}

func newTestPoller(t *testing.T, source *stubSource, sites ...string) (*Poller, *Engine) {
	t.Helper()
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})
	p, err := NewPoller(source, eng, PollerConfig{
		Sites:    sites,
		Interval: time.Minute,
		Window:   time.Hour,
		Limit:    32,
	}, eng.logger)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	return p, eng
}

func TestPollerEvaluatesBatchAndAdvancesCursor(t *testing.T) {
	source := &stubSource{readings: map[string][]models.SensorReading{
		"pit-a": {quietReading("pit-a", 0), quietReading("pit-a", 1)},
	}}
	p, eng := newTestPoller(t, source, "pit-a")

	now := tickEpoch.Add(time.Hour)
	p.pollOnce(context.Background(), now)

	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("evaluated %d readings, want 2", len(records))
	}

	// The same batch again must not re-evaluate anything.
	p.pollOnce(context.Background(), now.Add(time.Minute))
	records, err = eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("cursor failed to confine the window, got %d records", len(records))
	}

	q := source.lastQuery(t, "pit-a")
	wantStart := quietReading("pit-a", 1).At
	if !q.Start.Equal(wantStart) {
		t.Fatalf("second pull starts at %v, want cursor %v", q.Start, wantStart)
	}
}

func TestPollerFirstPullUsesLookbackWindow(t *testing.T) {
	source := &stubSource{}
	p, _ := newTestPoller(t, source, "pit-a")

	now := tickEpoch.Add(2 * time.Hour)
	p.pollOnce(context.Background(), now)

	q := source.lastQuery(t, "pit-a")
	if !q.Start.Equal(now.Add(-time.Hour)) || !q.End.Equal(now) {
		t.Fatalf("unexpected first window: %v .. %v", q.Start, q.End)
	}
	if q.Limit != 32 {
		t.Fatalf("limit %d, want 32", q.Limit)
	}
}

func TestPollerSkipsBadReadingWithoutWedging(t *testing.T) {
	bad := quietReading("pit-a", 1)
	bad.PorePressureKPa = math.NaN()
	source := &stubSource{readings: map[string][]models.SensorReading{
		"pit-a": {quietReading("pit-a", 0), bad, quietReading("pit-a", 2)},
	}}
	p, eng := newTestPoller(t, source, "pit-a")

	p.pollOnce(context.Background(), tickEpoch.Add(time.Hour))

	records, err := eng.TickRecords("pit-a", 0)
	if err != nil {
		t.Fatalf("tick records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("evaluated %d readings, want the 2 good ones", len(records))
	}

	// The cursor sits past the bad reading, so it is not retried forever.
	p.pollOnce(context.Background(), tickEpoch.Add(2*time.Hour))
	q := source.lastQuery(t, "pit-a")
	if !q.Start.Equal(quietReading("pit-a", 2).At) {
		t.Fatalf("cursor %v, want to sit past the bad reading", q.Start)
	}
}

func TestPollerIsolatesSourceFailures(t *testing.T) {
	source := &stubSource{
		readings: map[string][]models.SensorReading{
			"pit-b": {quietReading("pit-b", 0)},
		},
		failSite: "pit-a",
		failErr:  context.DeadlineExceeded,
	}
	p, eng := newTestPoller(t, source, "pit-a", "pit-b")

	now := tickEpoch.Add(time.Hour)
	p.pollOnce(context.Background(), now)

	if _, err := eng.TickRecords("pit-b", 0); err != nil {
		t.Fatalf("healthy site should have been evaluated: %v", err)
	}

	// The failed site keeps its lookback window on the next attempt.
	p.pollOnce(context.Background(), now.Add(time.Minute))
	q := source.lastQuery(t, "pit-a")
	if !q.Start.Equal(now.Add(time.Minute).Add(-time.Hour)) {
		t.Fatalf("failed pull must not advance the cursor, got start %v", q.Start)
	}
}

func TestPollerRunPollsImmediatelyAndStopsOnCancel(t *testing.T) {
	source := &stubSource{readings: map[string][]models.SensorReading{
		"pit-a": {quietReading("pit-a", 0)},
	}}
	eng := newTestEngine(t, nil, Options{DeescalateTicks: 3})
	p, err := NewPoller(source, eng, PollerConfig{
		Sites:    []string{"pit-a"},
		Interval: time.Hour,
	}, eng.logger)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if records, err := eng.TickRecords("pit-a", 0); err == nil && len(records) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("immediate poll never happened")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestNewPollerValidates(t *testing.T) {
	eng := newTestEngine(t, nil, Options{})
	source := &stubSource{}

	if _, err := NewPoller(nil, eng, PollerConfig{Sites: []string{"pit-a"}}, nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewPoller(source, nil, PollerConfig{Sites: []string{"pit-a"}}, nil); err == nil {
		t.Fatal("expected error for nil engine")
	}
	if _, err := NewPoller(source, eng, PollerConfig{}, nil); err == nil {
		t.Fatal("expected error for empty site list")
	}
}
