package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/repo"
)

type wireWaveform struct {
	Samples      []float64 `json:"samples"`
	SampleRateHz float64   `json:"sample_rate_hz"`
}

type wireGeometry struct {
	SlopeAngleDeg  float64 `json:"slope_angle_deg"`
	UnitWeightKNM3 float64 `json:"unit_weight_kn_m3"`
	FailureDepthM  float64 `json:"failure_depth_m"`
}

type wireReading struct {
	SiteID          string        `json:"site_id"`
	At              time.Time     `json:"at"`
	Waveform        wireWaveform  `json:"waveform"`
	PorePressureKPa float64       `json:"pore_pressure_kpa"`
	DisplacementMM  float64       `json:"displacement_mm"`
	RateMMPerHour   float64       `json:"rate_mm_h"`
	Geometry        *wireGeometry `json:"geometry,omitempty"`
}

type readingsQuery struct {
	SiteID string `json:"site_id"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Limit  int    `json:"limit"`
}

func main() {
	var (
		addr     string
		scenario string
		sites    string
		seed     int64
		interval time.Duration
		history  time.Duration
	)
	flag.StringVar(&addr, "addr", ":8081", "Listen address")
	flag.StringVar(&scenario, "scenario", repo.ScenarioStable, "Scenario to replay: stable, monsoon or seismic")
	flag.StringVar(&sites, "sites", "pit-a", "Comma-separated site ids served")
	flag.Int64Var(&seed, "seed", 42, "Scenario random seed")
	flag.DurationVar(&interval, "interval", 10*time.Minute, "Reading spacing")
	flag.DurationVar(&history, "history", 24*time.Hour, "How far before now tick zero sits")
	flag.Parse()

	logger := log.New(log.Writer(), "gateway-mock ", log.LstdFlags|log.Lmicroseconds)

	epoch := time.Now().UTC().Add(-history).Truncate(interval)
	source, err := repo.NewScenarioSource(scenario, seed, epoch, interval)
	if err != nil {
		logger.Fatalf("scenario source: %v", err)
	}

	served := make(map[string]bool)
	for _, site := range strings.Split(sites, ",") {
		if site = strings.TrimSpace(site); site != "" {
			served[site] = true
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/v1/readings/query", func(w http.ResponseWriter, r *http.Request) {
		if !enforcePost(w, r) {
			return
		}

		var q readingsQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad query: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !served[q.SiteID] {
			writeJSON(w, map[string]any{"readings": []wireReading{}})
			return
		}

		start, err := parseTime(q.Start)
		if err != nil {
			http.Error(w, "bad start: "+err.Error(), http.StatusBadRequest)
			return
		}
		end, err := parseTime(q.End)
		if err != nil {
			http.Error(w, "bad end: "+err.Error(), http.StatusBadRequest)
			return
		}
		if end.IsZero() {
			end = time.Now().UTC()
		}

		readings := source.Window(q.SiteID, start, end, q.Limit)
		wire := make([]wireReading, 0, len(readings))
		for _, reading := range readings {
			wire = append(wire, toWire(reading))
		}
		writeJSON(w, map[string]any{"readings": wire})
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: logRequests(logger, mux),
	}

	logger.Printf("replaying %s scenario for %s from %s, listening on %s",
		scenario, sites, epoch.Format(time.RFC3339), addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}
}

func toWire(reading models.SensorReading) wireReading {
	wire := wireReading{
		SiteID: reading.SiteID,
		At:     reading.At,
		Waveform: wireWaveform{
			Samples:      reading.Waveform.Samples,
			SampleRateHz: reading.Waveform.SampleRateHz,
		},
		PorePressureKPa: reading.PorePressureKPa,
		DisplacementMM:  reading.DisplacementMM,
		RateMMPerHour:   reading.RateMMPerHour,
	}
	if reading.Geometry != nil {
		wire.Geometry = &wireGeometry{
			SlopeAngleDeg:  reading.Geometry.SlopeAngleDeg,
			UnitWeightKNM3: reading.Geometry.UnitWeightKNM3,
			FailureDepthM:  reading.Geometry.FailureDepthM,
		}
	}
	return wire
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

func enforcePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rw.status, time.Since(start))
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
