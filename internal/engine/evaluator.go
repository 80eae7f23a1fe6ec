package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/benchguard/slope-engine/internal/classifier"
	"github.com/benchguard/slope-engine/internal/fusion"
	"github.com/benchguard/slope-engine/internal/metrics"
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/physics"
	"github.com/benchguard/slope-engine/internal/signal"
	"github.com/benchguard/slope-engine/internal/trend"
	"github.com/benchguard/slope-engine/pkg/ringlog"
)

// ErrUnknownSite marks queries for sites that have never produced a tick.
var ErrUnknownSite = errors.New("unknown site")

// AlarmDispatcher reacts to committed alert transitions.
type AlarmDispatcher interface {
	Dispatch(ctx context.Context, siteID string, tr models.Transition, dominant []models.ChannelOpinion) []models.DispatchRecord
}

// Options bound per-site retention and hysteresis.
type Options struct {
	DeescalateTicks     int
	DisplacementHistory int
	TickHistory         int
}

// AlertState is a site's current standing.
type AlertState struct {
	SiteID     string
	Level      models.AlertLevel
	Since      time.Time
	LastChange *models.Transition
}

// Engine evaluates readings site by site. Each tick fans the reading out to
// the spectral, physics and seismic channels, fuses their opinions worst-of,
// and runs the fused candidate through the site's hysteresis state machine
// before anything is recorded or dispatched. A channel failure fails the
// whole tick and leaves the site state untouched.
type Engine struct {
	logger     *slog.Logger
	decomposer *signal.Decomposer
	analyzer   *physics.Analyzer
	seismic    *classifier.Adapter
	policy     fusion.Policy
	dispatcher AlarmDispatcher
	opts       Options

	mu    sync.Mutex
	sites map[string]*siteSession

	dispatches sync.WaitGroup
}

// siteSession serializes one site's evaluations and holds its rolling state.
type siteSession struct {
	mu         sync.Mutex
	state      *fusion.StateMachine
	history    []models.DisplacementPoint
	lastAt     time.Time
	levelSince time.Time
	lastChange *models.Transition
	ticks      *ringlog.Log[models.TickRecord]
}

// NewEngine wires the three channels to a fusion policy. The dispatcher may
// be nil, which disables alarm actions.
func NewEngine(
	logger *slog.Logger,
	decomposer *signal.Decomposer,
	analyzer *physics.Analyzer,
	seismic *classifier.Adapter,
	policy fusion.Policy,
	dispatcher AlarmDispatcher,
	opts Options,
) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if decomposer == nil || analyzer == nil || seismic == nil {
		return nil, fmt.Errorf("decomposer, analyzer and classifier are all required")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("fusion policy: %w", err)
	}
	if opts.DeescalateTicks < 1 {
		opts.DeescalateTicks = 1
	}
	if opts.DisplacementHistory <= 0 {
		opts.DisplacementHistory = 288
	}
	if opts.TickHistory <= 0 {
		opts.TickHistory = 512
	}

	return &Engine{
		logger:     logger,
		decomposer: decomposer,
		analyzer:   analyzer,
		seismic:    seismic,
		policy:     policy,
		dispatcher: dispatcher,
		opts:       opts,
		sites:      make(map[string]*siteSession),
	}, nil
}

// EvaluateTick runs one reading through the full fusion flow and returns the
// committed tick record. Validation failures and channel errors reject the
// tick without touching the site's alert state or history.
func (e *Engine) EvaluateTick(ctx context.Context, reading models.SensorReading) (*models.TickRecord, error) {
	started := time.Now()
	if err := reading.Validate(); err != nil {
		metrics.IncMalformedReading(reading.SiteID)
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeRejected)
		return nil, err
	}

	session := e.session(reading.SiteID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.lastAt.IsZero() && !reading.At.After(session.lastAt) {
		metrics.IncMalformedReading(reading.SiteID)
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeRejected)
		return nil, &models.MalformedReadingError{
			SiteID: reading.SiteID,
			Field:  "at",
			Reason: fmt.Sprintf("timestamp %s does not advance past %s",
				reading.At.Format(time.RFC3339), session.lastAt.Format(time.RFC3339)),
		}
	}

	// The physics channel sees the current point on top of the committed
	// history; the point itself is committed only if the tick succeeds.
	history := make([]models.DisplacementPoint, 0, len(session.history)+1)
	history = append(history, session.history...)
	history = append(history, models.DisplacementPoint{At: reading.At, DisplacementMM: reading.DisplacementMM})

	var (
		band models.BandEnergy
		ind  models.Indicators
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		if band, err = e.decomposer.Decompose(reading.Waveform); err != nil {
			metrics.IncChannelError(fusion.ChannelSignal)
			return fmt.Errorf("signal channel: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ind, err = e.analyzer.Indicators(reading, history); err != nil {
			metrics.IncChannelError(fusion.ChannelFoS)
			return fmt.Errorf("physics channel: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeError)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeError)
		return nil, err
	}

	// The seismic channel consumes both upstream results, so it joins after
	// the barrier.
	cls, err := e.seismic.Classify(band, ind)
	if err != nil {
		metrics.IncChannelError(fusion.ChannelSeismic)
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeError)
		return nil, fmt.Errorf("seismic channel: %w", err)
	}

	opinions := []models.ChannelOpinion{
		e.policy.GradeRatio(band),
		e.policy.GradeFoS(ind.FoS),
		e.policy.GradeTTF(ind),
		e.policy.GradeRate(ind.RateMMPerHour),
		e.policy.GradeSeismic(cls),
	}
	candidate, dominant, err := fusion.Fuse(opinions)
	if err != nil {
		metrics.ObserveEvaluation(reading.SiteID, time.Since(started), metrics.OutcomeError)
		return nil, fmt.Errorf("fuse opinions: %w", err)
	}

	transition := session.state.Apply(candidate, reading.At)

	record := models.TickRecord{
		RecordID:       uuid.NewString(),
		SiteID:         reading.SiteID,
		At:             reading.At,
		Band:           band,
		Physics:        ind,
		Seismic:        cls,
		Opinions:       opinions,
		Corroboration:  corroborationNotes(e.policy, band, ind, cls),
		FusedCandidate: candidate,
		Transition:     transition,
		Level:          transition.To,
		EvalDuration:   time.Since(started),
	}

	session.commit(reading, record, e.opts.DisplacementHistory)

	metrics.ObserveEvaluation(reading.SiteID, record.EvalDuration, metrics.OutcomeSuccess)
	metrics.SetAlertLevel(reading.SiteID, int(transition.To))
	if transition.Changed {
		metrics.IncTransition(reading.SiteID, transition.Escalated, transition.To.String())
		e.logger.Info("alert level changed",
			"site", reading.SiteID,
			"from", transition.From.String(),
			"to", transition.To.String(),
			"candidate", candidate.String())

		if e.dispatcher != nil {
			dctx := context.WithoutCancel(ctx)
			e.dispatches.Add(1)
			go func() {
				defer e.dispatches.Done()
				e.dispatcher.Dispatch(dctx, record.SiteID, transition, dominant)
			}()
		}
	}

	return &record, nil
}

// AlertState reports the site's current level and when it was entered.
func (e *Engine) AlertState(siteID string) (AlertState, error) {
	session, err := e.lookup(siteID)
	if err != nil {
		return AlertState{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	state := AlertState{
		SiteID: siteID,
		Level:  session.state.Current(),
		Since:  session.levelSince,
	}
	if session.lastChange != nil {
		change := *session.lastChange
		state.LastChange = &change
	}
	return state, nil
}

// TickRecords returns up to limit most recent records, oldest first. A non-
// positive limit returns everything retained.
func (e *Engine) TickRecords(siteID string, limit int) ([]models.TickRecord, error) {
	session, err := e.lookup(siteID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.opts.TickHistory
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.ticks.Tail(limit), nil
}

// Summary condenses the retained records into trend figures.
func (e *Engine) Summary(siteID string) (models.SiteSummary, error) {
	session, err := e.lookup(siteID)
	if err != nil {
		return models.SiteSummary{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	summary := trend.Summarize(siteID, session.ticks.Tail(e.opts.TickHistory))
	// The session knows the true run start even after the ring evicted it.
	summary.CurrentLevel = session.state.Current()
	summary.AtLevelSince = session.levelSince
	return summary, nil
}

// SiteIDs lists every site with a session, sorted.
func (e *Engine) SiteIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.sites))
	for id := range e.sites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close waits for in-flight alarm dispatches to drain.
func (e *Engine) Close() {
	e.dispatches.Wait()
}

func (e *Engine) session(siteID string) *siteSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	session, ok := e.sites[siteID]
	if !ok {
		session = &siteSession{
			state: fusion.NewStateMachine(e.opts.DeescalateTicks),
			ticks: ringlog.New[models.TickRecord](e.opts.TickHistory),
		}
		e.sites[siteID] = session
	}
	return session
}

func (e *Engine) lookup(siteID string) (*siteSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	session, ok := e.sites[siteID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSite, siteID)
	}
	return session, nil
}

func (s *siteSession) commit(reading models.SensorReading, record models.TickRecord, maxHistory int) {
	s.lastAt = reading.At
	s.history = append(s.history, models.DisplacementPoint{At: reading.At, DisplacementMM: reading.DisplacementMM})
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
	if s.levelSince.IsZero() || record.Transition.Changed {
		s.levelSince = record.At
	}
	if record.Transition.Changed {
		change := record.Transition
		s.lastChange = &change
	}
	s.ticks.Append(record)
}
