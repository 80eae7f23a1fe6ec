package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels evaluations that produced a tick record.
	OutcomeSuccess = "success"
	// OutcomeRejected labels readings rejected before any channel ran.
	OutcomeRejected = "rejected"
	// OutcomeError labels evaluations failed by a channel or dependency.
	OutcomeError = "error"
)

var (
	evaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slope_engine",
			Name:      "evaluations_total",
			Help:      "Evaluation ticks handled, partitioned by site and outcome.",
		},
		[]string{"site", "outcome"},
	)

	evaluationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "slope_engine",
			Name:      "evaluation_seconds",
			Help:      "Evaluation tick latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
	)

	channelErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slope_engine",
			Name:      "channel_errors_total",
			Help:      "Analysis channel failures, partitioned by channel.",
		},
		[]string{"channel"},
	)

	alertLevel = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "slope_engine",
			Name:      "alert_level",
			Help:      "Current alert level per site (0 SAFE to 3 CRITICAL).",
		},
		[]string{"site"},
	)

	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slope_engine",
			Name:      "alert_transitions_total",
			Help:      "Alert level changes, partitioned by site, direction and target level.",
		},
		[]string{"site", "direction", "to"},
	)

	dispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slope_engine",
			Name:      "alarm_dispatches_total",
			Help:      "Alarm command dispatch attempts, partitioned by command and outcome.",
		},
		[]string{"command", "outcome"},
	)

	gatewayRequestSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "slope_engine",
			Name:      "gateway_request_seconds",
			Help:      "Readings gateway request latency in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	malformedReadingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slope_engine",
			Name:      "malformed_readings_total",
			Help:      "Readings rejected by validation, partitioned by site.",
		},
		[]string{"site"},
	)
)

// Register attaches the engine's collectors to the supplied registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		evaluationsTotal,
		evaluationDurationSeconds,
		channelErrorsTotal,
		alertLevel,
		transitionsTotal,
		dispatchesTotal,
		gatewayRequestSeconds,
		malformedReadingsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveEvaluation records one evaluation tick's duration and outcome.
func ObserveEvaluation(site string, duration time.Duration, outcome string) {
	evaluationsTotal.WithLabelValues(site, outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	evaluationDurationSeconds.Observe(duration.Seconds())
}

// IncChannelError counts one analysis channel failure.
func IncChannelError(channel string) {
	channelErrorsTotal.WithLabelValues(channel).Inc()
}

// SetAlertLevel exports a site's current level as a gauge.
func SetAlertLevel(site string, level int) {
	alertLevel.WithLabelValues(site).Set(float64(level))
}

// IncTransition counts one alert level change.
func IncTransition(site string, escalated bool, to string) {
	direction := "deescalation"
	if escalated {
		direction = "escalation"
	}
	transitionsTotal.WithLabelValues(site, direction, to).Inc()
}

// IncDispatch counts one alarm command attempt.
func IncDispatch(command, outcome string) {
	dispatchesTotal.WithLabelValues(command, outcome).Inc()
}

// ObserveGatewayRequest records a readings pull duration.
func ObserveGatewayRequest(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	gatewayRequestSeconds.Observe(duration.Seconds())
}

// IncMalformedReading counts one rejected reading.
func IncMalformedReading(site string) {
	malformedReadingsTotal.WithLabelValues(site).Inc()
}

// AddMalformedReadings counts a batch of dropped readings for a site.
func AddMalformedReadings(site string, n int) {
	if n <= 0 {
		return
	}
	malformedReadingsTotal.WithLabelValues(site).Add(float64(n))
}
