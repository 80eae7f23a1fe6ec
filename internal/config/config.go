package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the settings required to boot the slope engine.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	Site       SiteConfig       `yaml:"site"`
	Signal     SignalConfig     `yaml:"signal"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Fusion     FusionConfig     `yaml:"fusion"`
	Engine     EngineConfig     `yaml:"engine"`
	Poller     PollerConfig     `yaml:"poller"`
	Notify     NotifyConfig     `yaml:"notify"`
	Logging    LoggingConfig    `yaml:"logging"`
	Cache      CacheConfig      `yaml:"cache"`
}

// ServerConfig controls gRPC listener behaviour.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	MetricsAddress  string        `yaml:"metricsAddress"`
	GracefulTimeout time.Duration `yaml:"gracefulTimeout"`
}

// GatewayConfig configures the upstream readings gateway client.
type GatewayConfig struct {
	BaseURL      string        `yaml:"baseURL"`
	ReadingsPath string        `yaml:"readingsPath"`
	Token        string        `yaml:"token"`
	Timeout      time.Duration `yaml:"timeout"`
}

// SiteConfig fixes the default bench geometry and material strength.
// Readings may override geometry per bench.
type SiteConfig struct {
	SlopeAngleDeg     float64 `yaml:"slopeAngleDeg"`
	UnitWeightKNM3    float64 `yaml:"unitWeightKNM3"`
	FailureDepthM     float64 `yaml:"failureDepthM"`
	CohesionKPa       float64 `yaml:"cohesionKPa"`
	FrictionAngleDeg  float64 `yaml:"frictionAngleDeg"`
	SofteningKPaPerMM float64 `yaml:"softeningKPaPerMM"`
}

// SignalConfig controls the spectral band split.
type SignalConfig struct {
	LowCutoffHz  float64 `yaml:"lowCutoffHz"`
	HighCutoffHz float64 `yaml:"highCutoffHz"`
}

// PhysicsConfig controls the inverse-velocity fit.
type PhysicsConfig struct {
	MinFitPoints int `yaml:"minFitPoints"`
}

// ClassifierConfig selects the frozen seismic model. An empty model path
// falls back to the built-in spectral heuristic.
type ClassifierConfig struct {
	ModelPath       string  `yaml:"modelPath"`
	ConfidenceFloor float64 `yaml:"confidenceFloor"`
}

// FusionConfig carries the alert threshold tables and hysteresis depth.
type FusionConfig struct {
	FoSSafe          float64 `yaml:"fosSafe"`
	FoSWatch         float64 `yaml:"fosWatch"`
	FoSWarning       float64 `yaml:"fosWarning"`
	TTFCriticalHours float64 `yaml:"ttfCriticalHours"`
	TTFWarningHours  float64 `yaml:"ttfWarningHours"`
	TTFWatchHours    float64 `yaml:"ttfWatchHours"`
	RatioWatch       float64 `yaml:"ratioWatch"`
	RatioWarning     float64 `yaml:"ratioWarning"`
	RatioCritical    float64 `yaml:"ratioCritical"`
	RateWatch        float64 `yaml:"rateWatch"`
	RateWarning      float64 `yaml:"rateWarning"`
	RateCritical     float64 `yaml:"rateCritical"`
	DeescalateTicks  int     `yaml:"deescalateTicks"`
}

// EngineConfig bounds the per-site rolling state.
type EngineConfig struct {
	DisplacementHistory int `yaml:"displacementHistory"`
	TickHistory         int `yaml:"tickHistory"`
}

// PollerConfig controls the optional background pull loop.
type PollerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Window   time.Duration `yaml:"window"`
	Limit    int           `yaml:"limit"`
	Sites    []string      `yaml:"sites"`
}

// NotifyConfig controls alarm command dispatch.
type NotifyConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Endpoint    string        `yaml:"endpoint"`
	Token       string        `yaml:"token"`
	MinLevel    string        `yaml:"minLevel"`
	ActionsPath string        `yaml:"actionsPath"`
	DedupeTTL   time.Duration `yaml:"dedupeTTL"`
	Timeout     time.Duration `yaml:"timeout"`
	LogCapacity int           `yaml:"logCapacity"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// CacheConfig controls the Valkey-backed dedupe store.
type CacheConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Addr         string        `yaml:"addr"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	DialTimeout  time.Duration `yaml:"dialTimeout"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	MaxRetries   int           `yaml:"maxRetries"`
	TLS          bool          `yaml:"tls"`
}

// Load initialises Config from a YAML file and optional environment
// overrides. An empty path falls back to the SLOPE_ENGINE_CONFIG variable,
// then to pure defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SLOPE_ENGINE_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":50051",
			MetricsAddress:  ":2112",
			GracefulTimeout: 10 * time.Second,
		},
		Gateway: GatewayConfig{
			ReadingsPath: "/api/v1/readings/query",
			Timeout:      5 * time.Second,
		},
		Site: SiteConfig{
			SlopeAngleDeg:    35,
			UnitWeightKNM3:   20,
			FailureDepthM:    10,
			CohesionKPa:      65,
			FrictionAngleDeg: 38,
		},
		Signal: SignalConfig{
			LowCutoffHz:  50,
			HighCutoffHz: 2000,
		},
		Physics: PhysicsConfig{
			MinFitPoints: 3,
		},
		Classifier: ClassifierConfig{
			ConfidenceFloor: 0.6,
		},
		Fusion: FusionConfig{
			FoSSafe:          1.30,
			FoSWatch:         1.05,
			FoSWarning:       1.00,
			TTFCriticalHours: 2,
			TTFWarningHours:  6,
			TTFWatchHours:    24,
			RatioWatch:       0.30,
			RatioWarning:     0.55,
			RatioCritical:    0.75,
			RateWatch:        0.1,
			RateWarning:      0.5,
			RateCritical:     2.0,
			DeescalateTicks:  3,
		},
		Engine: EngineConfig{
			DisplacementHistory: 288,
			TickHistory:         512,
		},
		Poller: PollerConfig{
			Enabled:  false,
			Interval: time.Minute,
			Window:   10 * time.Minute,
			Limit:    32,
		},
		Notify: NotifyConfig{
			Enabled:     false,
			MinLevel:    "WARNING",
			DedupeTTL:   30 * time.Minute,
			Timeout:     5 * time.Second,
			LogCapacity: 512,
		},
		Logging: LoggingConfig{Level: "info", JSON: false},
		Cache: CacheConfig{
			Enabled:      false,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
			MaxRetries:   2,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLOPE_ENGINE_SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("SLOPE_ENGINE_METRICS_ADDRESS"); v != "" {
		cfg.Server.MetricsAddress = v
	}
	if v := os.Getenv("SLOPE_ENGINE_GATEWAY_BASE_URL"); v != "" {
		cfg.Gateway.BaseURL = v
	}
	if v := os.Getenv("SLOPE_ENGINE_GATEWAY_READINGS_PATH"); v != "" {
		cfg.Gateway.ReadingsPath = v
	}
	if v := os.Getenv("SLOPE_ENGINE_GATEWAY_TOKEN"); v != "" {
		cfg.Gateway.Token = v
	}
	if v := os.Getenv("SLOPE_ENGINE_GATEWAY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Gateway.Timeout = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_MODEL_PATH"); v != "" {
		cfg.Classifier.ModelPath = v
	}
	if v := os.Getenv("SLOPE_ENGINE_CONFIDENCE_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Classifier.ConfidenceFloor = f
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_DEESCALATE_TICKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fusion.DeescalateTicks = n
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SLOPE_ENGINE_LOG_FORMAT"); v == "json" {
		cfg.Logging.JSON = true
	}
	if v := os.Getenv("SLOPE_ENGINE_POLLER_ENABLED"); v != "" {
		cfg.Poller.Enabled = isTruthy(v)
	}
	if v := os.Getenv("SLOPE_ENGINE_POLLER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Poller.Interval = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_POLLER_SITES"); v != "" {
		sites := strings.Split(v, ",")
		cfg.Poller.Sites = cfg.Poller.Sites[:0]
		for _, s := range sites {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Poller.Sites = append(cfg.Poller.Sites, s)
			}
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_NOTIFY_ENABLED"); v != "" {
		cfg.Notify.Enabled = isTruthy(v)
	}
	if v := os.Getenv("SLOPE_ENGINE_NOTIFY_ENDPOINT"); v != "" {
		cfg.Notify.Endpoint = v
	}
	if v := os.Getenv("SLOPE_ENGINE_NOTIFY_TOKEN"); v != "" {
		cfg.Notify.Token = v
	}
	if v := os.Getenv("SLOPE_ENGINE_NOTIFY_MIN_LEVEL"); v != "" {
		cfg.Notify.MinLevel = v
	}
	if v := os.Getenv("SLOPE_ENGINE_NOTIFY_DEDUPE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Notify.DedupeTTL = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_ACTIONS_PATH"); v != "" {
		cfg.Notify.ActionsPath = v
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = isTruthy(v)
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_USERNAME"); v != "" {
		cfg.Cache.Username = v
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_PASSWORD"); v != "" {
		cfg.Cache.Password = v
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.DB = db
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_TLS"); isTruthy(v) {
		cfg.Cache.TLS = true
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_DIAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.DialTimeout = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.ReadTimeout = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.WriteTimeout = d
		}
	}
	if v := os.Getenv("SLOPE_ENGINE_CACHE_MAX_RETRIES"); v != "" {
		if retry, err := strconv.Atoi(v); err == nil {
			cfg.Cache.MaxRetries = retry
		}
	}
}

func isTruthy(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
