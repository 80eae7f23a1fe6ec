package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/benchguard/slope-engine/internal/api"
	"github.com/benchguard/slope-engine/internal/engine"
	slopev1 "github.com/benchguard/slope-engine/internal/grpc/generated"
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/utils"
)

// Evaluator defines the engine operations the gRPC facade drives.
type Evaluator interface {
	EvaluateTick(ctx context.Context, reading models.SensorReading) (*models.TickRecord, error)
	AlertState(siteID string) (engine.AlertState, error)
	TickRecords(siteID string, limit int) ([]models.TickRecord, error)
	Summary(siteID string) (models.SiteSummary, error)
	SiteIDs() []string
}

// DispatchLog exposes the alarm dispatcher's audit trail.
type DispatchLog interface {
	Recent(n int) []models.DispatchRecord
}

// AlertService implements the gRPC SlopeEngine service.
type AlertService struct {
	slopev1.UnimplementedSlopeEngineServer

	logger      *slog.Logger
	evaluator   Evaluator
	dispatchLog DispatchLog
	latencies   *utils.LatencyTracker
}

// NewAlertService constructs the alerting service facade.
func NewAlertService(logger *slog.Logger, evaluator Evaluator, dispatchLog DispatchLog) *AlertService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AlertService{
		logger:      logger,
		evaluator:   evaluator,
		dispatchLog: dispatchLog,
		latencies:   utils.NewLatencyTracker(1024),
	}
}

// EvaluateTick pushes one sensor reading through the evaluation pipeline.
func (s *AlertService) EvaluateTick(ctx context.Context, req *slopev1.EvaluateTickRequest) (*slopev1.EvaluateTickResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.evaluator == nil {
		return nil, status.Error(codes.FailedPrecondition, "evaluator not configured")
	}

	reading, err := api.FromProtoSensorReading(req.GetReading())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Debug("EvaluateTick called", slog.String("site_id", reading.SiteID))

	start := time.Now()
	record, err := s.evaluator.EvaluateTick(ctx, reading)
	duration := time.Since(start)
	if err != nil {
		var malformed *models.MalformedReadingError
		var invalid *models.InvalidSignalError
		if errors.As(err, &malformed) || errors.As(err, &invalid) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("tick evaluation failed", slog.String("site_id", reading.SiteID), slog.Any("error", err))
		return nil, status.Error(codes.Internal, fmt.Sprintf("evaluation failed: %v", err))
	}
	s.latencies.Observe(duration)
	if snap := s.latencies.Snapshot(); snap.Count >= 20 && snap.Count%20 == 0 {
		s.logger.Info("evaluation latency",
			slog.Duration("p50", snap.P50),
			slog.Duration("p95", snap.P95),
			slog.Int("samples", snap.Count))
	}

	return &slopev1.EvaluateTickResponse{Record: api.ToProtoTickRecord(*record)}, nil
}

// GetAlertState returns a site's current alert standing.
func (s *AlertService) GetAlertState(ctx context.Context, req *slopev1.GetAlertStateRequest) (*slopev1.GetAlertStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.evaluator == nil {
		return nil, status.Error(codes.FailedPrecondition, "evaluator not configured")
	}

	state, err := s.evaluator.AlertState(req.GetSiteId())
	if err != nil {
		if errors.Is(err, engine.ErrUnknownSite) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Error("alert state lookup failed", slog.Any("error", err))
		return nil, status.Error(codes.Internal, "failed to load alert state")
	}

	return &slopev1.GetAlertStateResponse{State: api.ToProtoAlertState(state)}, nil
}

// ListTickRecords returns a site's retained evaluation records, newest last.
func (s *AlertService) ListTickRecords(ctx context.Context, req *slopev1.ListTickRecordsRequest) (*slopev1.ListTickRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.evaluator == nil {
		return nil, status.Error(codes.FailedPrecondition, "evaluator not configured")
	}

	records, err := s.evaluator.TickRecords(req.GetSiteId(), int(req.GetLimit()))
	if err != nil {
		if errors.Is(err, engine.ErrUnknownSite) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Error("tick record listing failed", slog.Any("error", err))
		return nil, status.Error(codes.Internal, "failed to list tick records")
	}

	resp := &slopev1.ListTickRecordsResponse{}
	for _, rec := range records {
		resp.Records = append(resp.Records, api.ToProtoTickRecord(rec))
	}
	return resp, nil
}

// GetSiteSummary returns trend figures over a site's recorded ticks.
func (s *AlertService) GetSiteSummary(ctx context.Context, req *slopev1.GetSiteSummaryRequest) (*slopev1.GetSiteSummaryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.evaluator == nil {
		return nil, status.Error(codes.FailedPrecondition, "evaluator not configured")
	}

	summary, err := s.evaluator.Summary(req.GetSiteId())
	if err != nil {
		if errors.Is(err, engine.ErrUnknownSite) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Error("site summary failed", slog.Any("error", err))
		return nil, status.Error(codes.Internal, "failed to summarise site")
	}

	return &slopev1.GetSiteSummaryResponse{Summary: api.ToProtoSiteSummary(summary)}, nil
}

// ListDispatches returns recent alarm command attempts across all sites.
func (s *AlertService) ListDispatches(ctx context.Context, req *slopev1.ListDispatchesRequest) (*slopev1.ListDispatchesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.dispatchLog == nil {
		return nil, status.Error(codes.FailedPrecondition, "dispatch log not configured")
	}

	resp := &slopev1.ListDispatchesResponse{}
	for _, rec := range s.dispatchLog.Recent(int(req.GetLimit())) {
		resp.Dispatches = append(resp.Dispatches, api.ToProtoDispatchRecord(rec))
	}
	return resp, nil
}

// HealthCheck returns the current health state.
func (s *AlertService) HealthCheck(ctx context.Context, req *slopev1.HealthRequest) (*slopev1.HealthResponse, error) {
	resp := &slopev1.HealthResponse{Status: "SERVING", CheckedAt: timestamppb.Now()}
	if s.evaluator != nil {
		resp.Sites = s.evaluator.SiteIDs()
	}
	return resp, nil
}

// LatencyP95 returns the current p95 evaluation latency.
func (s *AlertService) LatencyP95() time.Duration {
	if s.latencies == nil {
		return 0
	}
	return s.latencies.Percentile(95)
}
