package models

import "time"

// TickRecord is the retained outcome of one evaluation tick. Raw waveforms
// are not stored; only derived quantities survive the tick.
type TickRecord struct {
	RecordID string
	SiteID   string
	At       time.Time

	Band           BandEnergy
	Physics        Indicators
	Seismic        Classification
	Opinions       []ChannelOpinion
	Corroboration  []string
	FusedCandidate AlertLevel
	Transition     Transition
	Level          AlertLevel

	EvalDuration time.Duration
}

// SiteSummary aggregates a site's recorded ticks into trend figures.
type SiteSummary struct {
	SiteID       string
	Ticks        int
	TicksByLevel map[string]int
	CurrentLevel AlertLevel
	AtLevelSince time.Time
	MinFoS       float64
	MaxRatio     float64
	LatestTTF    *float64
	RateTrendMMH float64
	LastChange   *Transition
	FirstTick    time.Time
	LastTick     time.Time
}

// DispatchRecord is one alarm command attempt kept for audit.
type DispatchRecord struct {
	DispatchID string
	SiteID     string
	Level      AlertLevel
	Command    string
	Endpoint   string
	At         time.Time
	Deduped    bool
	Err        string
}
