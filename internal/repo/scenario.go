package repo

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

// Canned site behaviours replayed by the scenario source.
const (
	ScenarioStable  = "stable"
	ScenarioMonsoon = "monsoon"
	ScenarioSeismic = "seismic"
)

// Trace synthesis parameters. The 4096 Hz rate resolves the 2 kHz fracture
// band; 1024 samples keeps every tone bin-aligned at 4 Hz resolution.
const (
	traceRateHz  = 4096.0
	traceSamples = 1024
	humFreqHz    = 24.0
	burstFreqHz  = 2040.0
)

const (
	basePoreKPa     = 30.0
	creepRateMMH    = 0.02
	rampStartHours  = 12.0
	rampKPaPerHour  = 11.0
	rampCapKPa      = 170.0
	burstStartHours = 6.0
	burstChance     = 0.25
	burstStepMM     = 0.8
)

// ScenarioSource synthesises deterministic gateway readings for local
// development and tests. A reading depends only on (seed, site, tick), never
// on call order, so replays line up across processes.
//
// stable keeps pore pressure and creep nominal. monsoon ramps pore pressure
// and accelerates displacement after hour 12. seismic injects high-frequency
// fracture bursts with small displacement steps.
type ScenarioSource struct {
	scenario string
	seed     int64
	epoch    time.Time
	interval time.Duration
}

// NewScenarioSource builds a source replaying the named scenario from epoch
// at one reading per interval.
func NewScenarioSource(scenario string, seed int64, epoch time.Time, interval time.Duration) (*ScenarioSource, error) {
	switch scenario {
	case ScenarioStable, ScenarioMonsoon, ScenarioSeismic:
	default:
		return nil, fmt.Errorf("unknown scenario %q", scenario)
	}
	if epoch.IsZero() {
		return nil, fmt.Errorf("scenario epoch required")
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &ScenarioSource{scenario: scenario, seed: seed, epoch: epoch, interval: interval}, nil
}

// Epoch returns the time of tick zero.
func (s *ScenarioSource) Epoch() time.Time { return s.epoch }

// Interval returns the reading spacing.
func (s *ScenarioSource) Interval() time.Duration { return s.interval }

// ReadingAt synthesises the reading for one tick index.
func (s *ScenarioSource) ReadingAt(siteID string, tick int) models.SensorReading {
	rng := s.rngFor(siteID, tick)
	burst := s.burstDraw(rng, tick)
	hours := float64(tick) * s.interval.Hours()

	reading := models.SensorReading{
		SiteID: siteID,
		At:     s.epoch.Add(time.Duration(tick) * s.interval),
	}

	switch s.scenario {
	case ScenarioMonsoon:
		reading.PorePressureKPa = basePoreKPa + rng.NormFloat64()
		reading.DisplacementMM = creepRateMMH * hours
		reading.RateMMPerHour = creepRateMMH
		if hours > rampStartHours {
			since := hours - rampStartHours
			reading.PorePressureKPa = math.Min(basePoreKPa+rampKPaPerHour*since, rampCapKPa) + rng.NormFloat64()
			reading.DisplacementMM = creepRateMMH*rampStartHours + creepRateMMH*since + 0.05*since*since
			reading.RateMMPerHour = creepRateMMH + 0.1*since
		}
		reading.Waveform = synthTrace(rng, 1.0, 0, 0.05)

	case ScenarioSeismic:
		reading.PorePressureKPa = basePoreKPa + 2 + rng.NormFloat64()
		reading.DisplacementMM = 0.01*hours + burstStepMM*float64(s.burstsThrough(siteID, tick))
		reading.RateMMPerHour = 0.015
		if burst {
			reading.Waveform = synthTrace(rng, 1.0, 3.0, 0.05)
		} else {
			reading.Waveform = synthTrace(rng, 1.0, 0, 0.05)
		}

	default: // stable
		reading.PorePressureKPa = basePoreKPa + 1.5*rng.NormFloat64()
		reading.DisplacementMM = creepRateMMH * hours
		reading.RateMMPerHour = creepRateMMH
		reading.Waveform = synthTrace(rng, 1.0, 0, 0.02)
	}
	return reading
}

// Window returns the readings whose timestamps fall in [start, end], oldest
// first, capped at limit when limit is positive.
func (s *ScenarioSource) Window(siteID string, start, end time.Time, limit int) []models.SensorReading {
	if end.Before(start) {
		return nil
	}
	first := 0
	if start.After(s.epoch) {
		first = int(math.Ceil(start.Sub(s.epoch).Seconds() / s.interval.Seconds()))
	}
	last := int(math.Floor(end.Sub(s.epoch).Seconds() / s.interval.Seconds()))
	if last < first {
		return nil
	}

	readings := make([]models.SensorReading, 0, last-first+1)
	for tick := first; tick <= last; tick++ {
		if limit > 0 && len(readings) == limit {
			break
		}
		readings = append(readings, s.ReadingAt(siteID, tick))
	}
	return readings
}

// burstDraw consumes the tick's burst decision from rng so the remaining
// draws stay aligned whether or not the scenario uses bursts.
func (s *ScenarioSource) burstDraw(rng *rand.Rand, tick int) bool {
	draw := rng.Float64()
	if s.scenario != ScenarioSeismic {
		return false
	}
	if float64(tick)*s.interval.Hours() < burstStartHours {
		return false
	}
	return draw < burstChance
}

func (s *ScenarioSource) burstsThrough(siteID string, tick int) int {
	count := 0
	for t := 0; t <= tick; t++ {
		rng := s.rngFor(siteID, t)
		if s.burstDraw(rng, t) {
			count++
		}
	}
	return count
}

func (s *ScenarioSource) rngFor(siteID string, tick int) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(siteID))
	mixed := h.Sum64() ^ uint64(tick+1)*0x9e3779b97f4a7c15
	return rand.New(rand.NewSource(s.seed ^ int64(mixed)))
}

func synthTrace(rng *rand.Rand, humAmp, burstAmp, noiseAmp float64) models.Waveform {
	samples := make([]float64, traceSamples)
	for i := range samples {
		t := float64(i) / traceRateHz
		v := humAmp * math.Sin(2*math.Pi*humFreqHz*t)
		if burstAmp > 0 {
			v += burstAmp * math.Sin(2*math.Pi*burstFreqHz*t)
		}
		samples[i] = v + noiseAmp*rng.NormFloat64()
	}
	return models.Waveform{Samples: samples, SampleRateHz: traceRateHz}
}
