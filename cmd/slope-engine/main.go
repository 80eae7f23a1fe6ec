package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/benchguard/slope-engine/internal/api"
	"github.com/benchguard/slope-engine/internal/cache"
	"github.com/benchguard/slope-engine/internal/classifier"
	"github.com/benchguard/slope-engine/internal/config"
	"github.com/benchguard/slope-engine/internal/engine"
	"github.com/benchguard/slope-engine/internal/fusion"
	"github.com/benchguard/slope-engine/internal/metrics"
	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/notify"
	"github.com/benchguard/slope-engine/internal/physics"
	"github.com/benchguard/slope-engine/internal/repo"
	"github.com/benchguard/slope-engine/internal/services"
	sigproc "github.com/benchguard/slope-engine/internal/signal"
	"github.com/benchguard/slope-engine/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting slope-engine", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	var cacheProvider cache.Provider = cache.NewMemoryProvider()
	var valkeyCloser cache.Provider
	if cfg.Cache.Enabled && cfg.Cache.Addr != "" {
		provider, err := cache.NewValkeyProvider(cache.ValkeyConfig{
			Addr:         cfg.Cache.Addr,
			Username:     cfg.Cache.Username,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
			MaxRetries:   cfg.Cache.MaxRetries,
			TLS:          cfg.Cache.TLS,
		})
		if err != nil {
			logger.Warn("valkey cache unavailable, using in-memory dedupe", slog.Any("error", err))
		} else {
			cacheProvider = provider
			valkeyCloser = provider
		}
	}
	if valkeyCloser != nil {
		defer valkeyCloser.Close()
	}

	decomposer, err := sigproc.NewDecomposer(cfg.Signal.LowCutoffHz, cfg.Signal.HighCutoffHz)
	if err != nil {
		logger.Error("failed to build signal decomposer", slog.Any("error", err))
		os.Exit(1)
	}

	analyzer, err := physics.NewAnalyzer(
		models.SlopeGeometry{
			SlopeAngleDeg:  cfg.Site.SlopeAngleDeg,
			UnitWeightKNM3: cfg.Site.UnitWeightKNM3,
			FailureDepthM:  cfg.Site.FailureDepthM,
		},
		models.Strength{
			CohesionKPa:       cfg.Site.CohesionKPa,
			FrictionAngleDeg:  cfg.Site.FrictionAngleDeg,
			SofteningKPaPerMM: cfg.Site.SofteningKPaPerMM,
		},
		cfg.Physics.MinFitPoints,
	)
	if err != nil {
		logger.Error("failed to build physics analyzer", slog.Any("error", err))
		os.Exit(1)
	}

	var model classifier.Model = classifier.NewSpectralHeuristic()
	if cfg.Classifier.ModelPath != "" {
		ensemble, err := classifier.NewEnsembleModel(cfg.Classifier.ModelPath)
		if err != nil {
			logger.Error("failed to load classifier artifact", slog.String("path", cfg.Classifier.ModelPath), slog.Any("error", err))
			os.Exit(1)
		}
		model = ensemble
		logger.Info("loaded frozen classifier", slog.String("path", cfg.Classifier.ModelPath))
	}
	seismic, err := classifier.NewAdapter(model, cfg.Classifier.ConfidenceFloor)
	if err != nil {
		logger.Error("failed to build classifier adapter", slog.Any("error", err))
		os.Exit(1)
	}

	policy := fusion.Policy{
		FoSSafe:          cfg.Fusion.FoSSafe,
		FoSWatch:         cfg.Fusion.FoSWatch,
		FoSWarning:       cfg.Fusion.FoSWarning,
		TTFCriticalHours: cfg.Fusion.TTFCriticalHours,
		TTFWarningHours:  cfg.Fusion.TTFWarningHours,
		TTFWatchHours:    cfg.Fusion.TTFWatchHours,
		RatioWatch:       cfg.Fusion.RatioWatch,
		RatioWarning:     cfg.Fusion.RatioWarning,
		RatioCritical:    cfg.Fusion.RatioCritical,
		RateWatch:        cfg.Fusion.RateWatch,
		RateWarning:      cfg.Fusion.RateWarning,
		RateCritical:     cfg.Fusion.RateCritical,
	}

	var dispatcher engine.AlarmDispatcher
	var dispatchLog services.DispatchLog
	if cfg.Notify.Enabled {
		minLevel, err := models.ParseAlertLevel(cfg.Notify.MinLevel)
		if err != nil {
			logger.Error("invalid notify minimum level", slog.Any("error", err))
			os.Exit(1)
		}
		pack, err := notify.NewActionPack(cfg.Notify.ActionsPath, logger)
		if err != nil {
			logger.Error("failed to load action pack", slog.String("path", cfg.Notify.ActionsPath), slog.Any("error", err))
			os.Exit(1)
		}
		d := notify.NewDispatcher(notify.Config{
			Endpoint:    cfg.Notify.Endpoint,
			AuthToken:   cfg.Notify.Token,
			MinLevel:    minLevel,
			DedupeTTL:   cfg.Notify.DedupeTTL,
			Timeout:     cfg.Notify.Timeout,
			HistorySize: cfg.Notify.LogCapacity,
		}, cacheProvider, pack, logger)
		dispatcher = d
		dispatchLog = d
	}

	eng, err := engine.NewEngine(logger, decomposer, analyzer, seismic, policy, dispatcher, engine.Options{
		DeescalateTicks:     cfg.Fusion.DeescalateTicks,
		DisplacementHistory: cfg.Engine.DisplacementHistory,
		TickHistory:         cfg.Engine.TickHistory,
	})
	if err != nil {
		logger.Error("failed to build evaluation engine", slog.Any("error", err))
		os.Exit(1)
	}

	alertService := services.NewAlertService(logger, eng, dispatchLog)

	server, err := api.NewServer(cfg.Server, alertService)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Poller.Enabled {
		gateway := repo.NewGatewayClient(cfg.Gateway.BaseURL, cfg.Gateway.ReadingsPath, cfg.Gateway.Token, cfg.Gateway.Timeout)
		poller, err := engine.NewPoller(gateway, eng, engine.PollerConfig{
			Sites:    cfg.Poller.Sites,
			Interval: cfg.Poller.Interval,
			Window:   cfg.Poller.Window,
			Limit:    cfg.Poller.Limit,
		}, logger)
		if err != nil {
			logger.Error("failed to build readings poller", slog.Any("error", err))
			os.Exit(1)
		}
		go poller.Run(ctx)
	}

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil {
			logger.Error("gRPC server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	server.Shutdown(shutdownCtx)

	eng.Close()

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("slope-engine stopped")
}
