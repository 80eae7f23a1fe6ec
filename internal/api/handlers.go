package api

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/benchguard/slope-engine/internal/engine"
	slopev1 "github.com/benchguard/slope-engine/internal/grpc/generated"
	"github.com/benchguard/slope-engine/internal/models"
)

// FromProtoSensorReading maps the gRPC reading into its domain form.
func FromProtoSensorReading(req *slopev1.SensorReading) (models.SensorReading, error) {
	if req == nil {
		return models.SensorReading{}, fmt.Errorf("reading is nil")
	}
	if req.At == nil {
		return models.SensorReading{}, fmt.Errorf("reading.at is required")
	}

	reading := models.SensorReading{
		SiteID: req.SiteId,
		At:     req.At.AsTime(),
		Waveform: models.Waveform{
			Samples:      append([]float64(nil), req.Samples...),
			SampleRateHz: req.SampleRateHz,
		},
		PorePressureKPa: req.PorePressureKpa,
		DisplacementMM:  req.DisplacementMm,
		RateMMPerHour:   req.RateMmPerHour,
	}
	if req.Geometry != nil {
		reading.Geometry = &models.SlopeGeometry{
			SlopeAngleDeg:  req.Geometry.SlopeAngleDeg,
			UnitWeightKNM3: req.Geometry.UnitWeightKnM3,
			FailureDepthM:  req.Geometry.FailureDepthM,
		}
	}
	return reading, nil
}

// ToProtoTickRecord converts a recorded evaluation into the gRPC shape.
func ToProtoTickRecord(rec models.TickRecord) *slopev1.TickRecord {
	proto := &slopev1.TickRecord{
		RecordId:       rec.RecordID,
		SiteId:         rec.SiteID,
		At:             timestamppb.New(rec.At),
		Band:           toProtoBandEnergy(rec.Band),
		Physics:        toProtoIndicators(rec.Physics),
		Seismic:        toProtoClassification(rec.Seismic),
		Corroboration:  append([]string(nil), rec.Corroboration...),
		FusedCandidate: toProtoLevel(rec.FusedCandidate),
		Transition:     toProtoTransition(rec.Transition),
		Level:          toProtoLevel(rec.Level),
		EvalDurationUs: rec.EvalDuration.Microseconds(),
	}
	for _, op := range rec.Opinions {
		proto.Opinions = append(proto.Opinions, &slopev1.ChannelOpinion{
			Channel:  op.Channel,
			Level:    toProtoLevel(op.Level),
			Reason:   op.Reason,
			Evidence: op.Evidence,
		})
	}
	return proto
}

// ToProtoAlertState converts a site's standing into the gRPC shape.
func ToProtoAlertState(state engine.AlertState) *slopev1.AlertState {
	proto := &slopev1.AlertState{
		SiteId: state.SiteID,
		Level:  toProtoLevel(state.Level),
	}
	if !state.Since.IsZero() {
		proto.Since = timestamppb.New(state.Since)
	}
	if state.LastChange != nil {
		proto.LastChange = toProtoTransition(*state.LastChange)
	}
	return proto
}

// ToProtoSiteSummary converts trend figures into the gRPC shape.
func ToProtoSiteSummary(sum models.SiteSummary) *slopev1.SiteSummary {
	proto := &slopev1.SiteSummary{
		SiteId:       sum.SiteID,
		Ticks:        int32(sum.Ticks),
		CurrentLevel: toProtoLevel(sum.CurrentLevel),
		MinFos:       sum.MinFoS,
		MaxRatio:     sum.MaxRatio,
		RateTrendMmH: sum.RateTrendMMH,
	}
	for _, level := range levelOrder {
		if n, ok := sum.TicksByLevel[level.String()]; ok {
			proto.TicksByLevel = append(proto.TicksByLevel, &slopev1.LevelTicks{
				Level: level.String(),
				Ticks: int32(n),
			})
		}
	}
	if sum.LatestTTF != nil {
		proto.TtfIndicated = true
		proto.TtfHours = *sum.LatestTTF
	}
	if !sum.AtLevelSince.IsZero() {
		proto.AtLevelSince = timestamppb.New(sum.AtLevelSince)
	}
	if sum.LastChange != nil {
		proto.LastChange = toProtoTransition(*sum.LastChange)
	}
	if !sum.FirstTick.IsZero() {
		proto.FirstTick = timestamppb.New(sum.FirstTick)
	}
	if !sum.LastTick.IsZero() {
		proto.LastTick = timestamppb.New(sum.LastTick)
	}
	return proto
}

// ToProtoDispatchRecord converts an alarm dispatch attempt into the gRPC
// shape.
func ToProtoDispatchRecord(rec models.DispatchRecord) *slopev1.DispatchRecord {
	return &slopev1.DispatchRecord{
		DispatchId: rec.DispatchID,
		SiteId:     rec.SiteID,
		Level:      toProtoLevel(rec.Level),
		Command:    rec.Command,
		Endpoint:   rec.Endpoint,
		At:         timestamppb.New(rec.At),
		Deduped:    rec.Deduped,
		Error:      rec.Err,
	}
}

var levelOrder = []models.AlertLevel{
	models.AlertSafe,
	models.AlertWatch,
	models.AlertWarning,
	models.AlertCritical,
}

func toProtoLevel(level models.AlertLevel) slopev1.AlertLevel {
	switch level {
	case models.AlertSafe:
		return slopev1.AlertLevel_ALERT_LEVEL_SAFE
	case models.AlertWatch:
		return slopev1.AlertLevel_ALERT_LEVEL_WATCH
	case models.AlertWarning:
		return slopev1.AlertLevel_ALERT_LEVEL_WARNING
	case models.AlertCritical:
		return slopev1.AlertLevel_ALERT_LEVEL_CRITICAL
	default:
		return slopev1.AlertLevel_ALERT_LEVEL_UNSPECIFIED
	}
}

func toProtoBandEnergy(band models.BandEnergy) *slopev1.BandEnergy {
	return &slopev1.BandEnergy{
		LowCutoffHz:     band.LowCutoffHz,
		HighCutoffHz:    band.HighCutoffHz,
		MachineryEnergy: band.MachineryEnergy,
		FractureEnergy:  band.FractureEnergy,
		TotalEnergy:     band.TotalEnergy,
		FractureRatio:   band.FractureRatio,
	}
}

func toProtoIndicators(ind models.Indicators) *slopev1.Indicators {
	proto := &slopev1.Indicators{
		Fos:                  ind.FoS,
		NormalStressKpa:      ind.NormalStressKPa,
		EffectiveStressKpa:   ind.EffectiveStressKPa,
		ShearStressKpa:       ind.ShearStressKPa,
		PorePressureKpa:      ind.PorePressureKPa,
		RateMmPerHour:        ind.RateMMPerHour,
		InverseVelocitySlope: ind.InverseVelocitySlope,
		TtfStatus:            ind.TTFStatus,
	}
	if ind.TTFHours != nil {
		proto.TtfHours = *ind.TTFHours
	}
	return proto
}

func toProtoClassification(cls models.Classification) *slopev1.Classification {
	return &slopev1.Classification{
		Label:        cls.Label,
		Confidence:   cls.Confidence,
		Inconclusive: cls.Inconclusive,
	}
}

func toProtoTransition(tr models.Transition) *slopev1.Transition {
	proto := &slopev1.Transition{
		From:            toProtoLevel(tr.From),
		To:              toProtoLevel(tr.To),
		Candidate:       toProtoLevel(tr.Candidate),
		Changed:         tr.Changed,
		Escalated:       tr.Escalated,
		ProbationTicks:  int32(tr.ProbationTicks),
		ProbationNeeded: int32(tr.ProbationNeeded),
	}
	if !tr.At.IsZero() {
		proto.At = timestamppb.New(tr.At)
	}
	return proto
}
