package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benchguard/slope-engine/internal/metrics"
	"github.com/benchguard/slope-engine/internal/models"
)

// ReadingsSource abstracts the gateway pull the poller drives.
type ReadingsSource interface {
	FetchReadings(ctx context.Context, q models.ReadingsQuery) ([]models.SensorReading, int, error)
}

// PollerConfig tunes the background pull loop.
type PollerConfig struct {
	Sites    []string
	Interval time.Duration
	Window   time.Duration
	Limit    int
}

// Poller periodically pulls readings for the configured sites and feeds
// them to the engine in gateway order. A failed pull or a failed tick is
// logged and skipped; the cursor only advances past readings that were
// evaluated, so transient gateway trouble never drops a window.
type Poller struct {
	source  ReadingsSource
	engine  *Engine
	cfg     PollerConfig
	logger  *slog.Logger
	cursors map[string]time.Time
}

// NewPoller wires a readings source to the engine.
func NewPoller(source ReadingsSource, eng *Engine, cfg PollerConfig, logger *slog.Logger) (*Poller, error) {
	if source == nil || eng == nil {
		return nil, fmt.Errorf("poller needs a readings source and an engine")
	}
	if len(cfg.Sites) == 0 {
		return nil, fmt.Errorf("poller needs at least one site")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Window <= 0 {
		cfg.Window = 10 * time.Minute
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 32
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		source:  source,
		engine:  eng,
		cfg:     cfg,
		logger:  logger,
		cursors: make(map[string]time.Time, len(cfg.Sites)),
	}, nil
}

// Run polls until the context is cancelled. The first pull happens
// immediately rather than one interval in.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("readings poller started",
		"sites", strings.Join(p.cfg.Sites, ","),
		"interval", p.cfg.Interval.String())

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.pollOnce(ctx, time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("readings poller stopped")
			return
		case <-ticker.C:
			p.pollOnce(ctx, time.Now().UTC())
		}
	}
}

func (p *Poller) pollOnce(ctx context.Context, now time.Time) {
	for _, site := range p.cfg.Sites {
		if ctx.Err() != nil {
			return
		}

		cursor := p.cursors[site]
		start := cursor
		if start.IsZero() {
			start = now.Add(-p.cfg.Window)
		}

		began := time.Now()
		readings, skipped, err := p.source.FetchReadings(ctx, models.ReadingsQuery{
			SiteID: site,
			Start:  start,
			End:    now,
			Limit:  p.cfg.Limit,
		})
		metrics.ObserveGatewayRequest(time.Since(began))
		if err != nil {
			p.logger.Warn("readings pull failed", "site", site, "error", err)
			continue
		}
		if skipped > 0 {
			metrics.AddMalformedReadings(site, skipped)
			p.logger.Warn("gateway dropped malformed readings", "site", site, "skipped", skipped)
		}

		for _, reading := range readings {
			if !cursor.IsZero() && !reading.At.After(cursor) {
				continue
			}
			if _, err := p.engine.EvaluateTick(ctx, reading); err != nil {
				p.logger.Warn("tick evaluation failed",
					"site", site,
					"at", reading.At.Format(time.RFC3339),
					"error", err)
				continue
			}
			cursor = reading.At
		}
		if !cursor.IsZero() {
			p.cursors[site] = cursor
		}
	}
}
