package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benchguard/slope-engine/internal/cache"
	"github.com/benchguard/slope-engine/internal/metrics"
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/utils"
	"github.com/benchguard/slope-engine/pkg/ringlog"
)

// DefaultCommand fires when no playbook action matches an escalation.
const DefaultCommand = "raise-alarm"

// Config carries dispatcher tuning.
type Config struct {
	Endpoint    string
	AuthToken   string
	MinLevel    models.AlertLevel
	DedupeTTL   time.Duration
	Timeout     time.Duration
	HistorySize int
}

// Dispatcher pushes alarm commands to the site control endpoint when the
// alert state escalates. Dedupe is cache-backed so repeated escalations to
// the same level inside the TTL window do not hammer the sirens; when the
// cache is down dispatch proceeds anyway.
type Dispatcher struct {
	cfg        Config
	httpClient *http.Client
	cache      cache.Provider
	pack       *ActionPack
	logger     *slog.Logger
	history    *ringlog.Log[models.DispatchRecord]
}

// NewDispatcher constructs a dispatcher. cacheProvider may be nil, which
// degrades dedupe to always-dispatch.
func NewDispatcher(cfg Config, cacheProvider cache.Provider, pack *ActionPack, logger *slog.Logger) *Dispatcher {
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.DedupeTTL < 0 {
		cfg.DedupeTTL = 0
	}
	return &Dispatcher{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cacheProvider,
		pack:       pack,
		logger:     logger,
		history:    ringlog.New[models.DispatchRecord](cfg.HistorySize),
	}
}

// Dispatch reacts to a committed state change. Escalations at or above the
// configured minimum dispatch playbook commands; a drop back to SAFE clears
// the site's dedupe keys so the next event fires again. Every attempt is
// recorded, deduped and failed ones included.
func (d *Dispatcher) Dispatch(ctx context.Context, siteID string, tr models.Transition, dominant []models.ChannelOpinion) []models.DispatchRecord {
	if d == nil || !tr.Changed {
		return nil
	}

	if !tr.Escalated {
		if tr.To == models.AlertSafe {
			d.clearDedupe(ctx, siteID)
		}
		return nil
	}
	if tr.To < d.cfg.MinLevel {
		return nil
	}

	commands := d.pack.CommandsFor(siteID, tr.To, dominant)
	if len(commands) == 0 {
		commands = []string{DefaultCommand}
	}

	key := dedupeKey(siteID, tr.To)
	fresh, err := d.cache.SetNX(ctx, key, []byte(tr.At.UTC().Format(time.RFC3339)), d.cfg.DedupeTTL)
	if err != nil {
		d.logger.Warn("alarm dedupe unavailable, dispatching anyway",
			"site", siteID, "error", err)
		fresh = true
	}

	reasons := make([]string, 0, len(dominant))
	for _, op := range dominant {
		reasons = append(reasons, op.Reason)
	}

	records := make([]models.DispatchRecord, 0, len(commands))
	for _, command := range commands {
		record := models.DispatchRecord{
			DispatchID: uuid.NewString(),
			SiteID:     siteID,
			Level:      tr.To,
			Command:    command,
			Endpoint:   d.cfg.Endpoint,
			At:         tr.At,
		}
		if !fresh {
			record.Deduped = true
			metrics.IncDispatch(command, "deduped")
		} else if err := d.send(ctx, siteID, tr, command, reasons); err != nil {
			record.Err = err.Error()
			metrics.IncDispatch(command, "error")
			d.logger.Error("alarm dispatch failed",
				"site", siteID, "command", command, "error", err)
		} else {
			metrics.IncDispatch(command, "sent")
			d.logger.Info("alarm dispatched",
				"site", siteID, "level", tr.To.String(), "command", command)
		}
		d.history.Append(record)
		records = append(records, record)
	}
	return records
}

// Recent returns up to n most recent dispatch records, oldest first.
func (d *Dispatcher) Recent(n int) []models.DispatchRecord {
	if d == nil {
		return nil
	}
	return d.history.Tail(n)
}

func (d *Dispatcher) send(ctx context.Context, siteID string, tr models.Transition, command string, reasons []string) error {
	if d.cfg.Endpoint == "" {
		return fmt.Errorf("alarm endpoint not configured")
	}

	payload := map[string]interface{}{
		"site_id": siteID,
		"level":   tr.To.String(),
		"command": command,
		"reasons": reasons,
		"at":      tr.At.UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if d.cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.cfg.AuthToken)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return utils.NewAppError("alarm dispatch", d.cfg.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("alarm endpoint returned %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

func (d *Dispatcher) clearDedupe(ctx context.Context, siteID string) {
	for _, level := range []models.AlertLevel{models.AlertWatch, models.AlertWarning, models.AlertCritical} {
		if err := d.cache.Del(ctx, dedupeKey(siteID, level)); err != nil {
			d.logger.Warn("failed to clear alarm dedupe key",
				"site", siteID, "level", level.String(), "error", err)
		}
	}
}

func dedupeKey(siteID string, level models.AlertLevel) string {
	return fmt.Sprintf("alarm:%s:%s", siteID, level)
}
