package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/irfndi/strmarket-engine/internal/logging"
	"github.com/irfndi/strmarket-engine/internal/normalizer"
	"github.com/irfndi/strmarket-engine/internal/scoring"
	"github.com/irfndi/strmarket-engine/internal/telemetry"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Environment    string                        `mapstructure:"environment"`
	LogLevel       string                        `mapstructure:"log_level"`
	Regulation     RegulationConfig              `mapstructure:"regulation"`
	Normalizer     normalizer.Config             `mapstructure:"normalizer"`
	Investment     scoring.InvestmentAssumptions `mapstructure:"investment"`
	Penalty        scoring.PenaltyRules          `mapstructure:"penalty"`
	StateRollup    StateRollupConfig             `mapstructure:"state_rollup"`
	ScoringService ScoringServiceConfig          `mapstructure:"scoring_service"`
	Cache          CacheConfig                   `mapstructure:"cache"`
	Redis          RedisConfig                   `mapstructure:"redis"`
	Telemetry      TelemetryConfig               `mapstructure:"telemetry"`
}

type RegulationConfig struct {
	// OverridesPath is an optional YAML file layered over the curated table
	OverridesPath string `mapstructure:"overrides_path"`
}

type StateRollupConfig struct {
	MinPopulation int64 `mapstructure:"min_population"`
}

type ScoringServiceConfig struct {
	Workers int `mapstructure:"workers"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"`
	TTL     string `mapstructure:"ttl"`
}

// GetTTL returns the parsed TTL, or zero when unset or invalid
func (c CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type TelemetryConfig struct {
	Tracing telemetry.TelemetryConfig `mapstructure:"tracing"`
	Logs    logging.OTLPConfig        `mapstructure:"logs"`
	Errors  telemetry.SentryConfig    `mapstructure:"errors"`
}

// Load reads config.yaml from ./configs or the working directory, then
// environment variables. A .env file, when present, is loaded first.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is Load with an explicit config file path
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Set default values
	setDefaults(v)

	// Enable environment variable support
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(strings.TrimSpace(config.Environment))
	config.Cache.Backend = strings.ToLower(strings.TrimSpace(config.Cache.Backend))
	if config.Telemetry.Tracing.Environment == "" {
		config.Telemetry.Tracing.Environment = config.Environment
	}
	if config.Telemetry.Logs.Environment == "" {
		config.Telemetry.Logs.Environment = config.Environment
	}
	if config.Telemetry.Errors.Environment == "" {
		config.Telemetry.Errors.Environment = config.Environment
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every section. Scoring tables are validated by the same
// code the engine runs at construction.
func (c *Config) Validate() error {
	if err := c.Normalizer.Validate(); err != nil {
		return err
	}
	if err := c.Investment.Validate(); err != nil {
		return err
	}

	classifier, err := scoring.NewGradeClassifier(scoring.DefaultGradeBands())
	if err != nil {
		return err
	}
	if err := c.Penalty.Validate(classifier.HoldFloor()); err != nil {
		return err
	}

	if c.StateRollup.MinPopulation < 0 {
		return utils.NewFieldError("state_rollup.min_population", "must not be negative")
	}
	if c.ScoringService.Workers < 1 {
		return utils.NewFieldError("scoring_service.workers", "must be at least 1, got %d", c.ScoringService.Workers)
	}

	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case CacheBackendMemory, CacheBackendRedis:
		default:
			return utils.NewFieldError("cache.backend", "must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
		}
		if c.Cache.TTL != "" {
			d, err := time.ParseDuration(c.Cache.TTL)
			if err != nil {
				return utils.NewFieldError("cache.ttl", "invalid duration: %v", err)
			}
			if d < 0 {
				return utils.NewFieldError("cache.ttl", "must not be negative")
			}
		}
	}

	switch strings.ToLower(c.Telemetry.Tracing.Exporter) {
	case "", telemetry.ExporterStdout, telemetry.ExporterOTLP, telemetry.ExporterNone:
	default:
		return utils.NewFieldError("telemetry.tracing.exporter", "unknown exporter %q", c.Telemetry.Tracing.Exporter)
	}
	if c.Telemetry.Tracing.SampleRate < 0 || c.Telemetry.Tracing.SampleRate > 1 {
		return utils.NewFieldError("telemetry.tracing.sample_rate", "must be between 0 and 1")
	}
	if c.Telemetry.Errors.SampleRate < 0 || c.Telemetry.Errors.SampleRate > 1 {
		return utils.NewFieldError("telemetry.errors.sample_rate", "must be between 0 and 1")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	// Regulation
	v.SetDefault("regulation.overrides_path", "")

	// Normalizer
	n := normalizer.DefaultConfig()
	v.SetDefault("normalizer.defaults.population", n.Defaults.Population)
	v.SetDefault("normalizer.defaults.median_home_value", n.Defaults.MedianHomeValue)
	v.SetDefault("normalizer.defaults.average_daily_rate", n.Defaults.AverageDailyRate)
	v.SetDefault("normalizer.defaults.occupancy_rate", n.Defaults.OccupancyRate)
	v.SetDefault("normalizer.defaults.saturation", n.Defaults.Saturation)
	v.SetDefault("normalizer.defaults.seasonality_consistency", n.Defaults.SeasonalityConsistency)
	v.SetDefault("normalizer.defaults.landlord_favorability", n.Defaults.LandlordFavorability)
	v.SetDefault("normalizer.full_saturation_density", n.FullSaturationDensity)
	v.SetDefault("normalizer.seasonality_smoothing", n.SeasonalitySmoothing)

	// Investment
	inv := scoring.DefaultInvestmentAssumptions()
	v.SetDefault("investment.down_payment_pct", inv.DownPaymentPct)
	v.SetDefault("investment.closing_cost_pct", inv.ClosingCostPct)
	v.SetDefault("investment.furnishing_cost", inv.FurnishingCost)
	v.SetDefault("investment.mortgage_rate_pct", inv.MortgageRatePct)
	v.SetDefault("investment.mortgage_term_years", inv.MortgageTermYears)
	v.SetDefault("investment.operating_expense_pct", inv.OperatingExpensePct)
	v.SetDefault("investment.holding_cost_pct", inv.HoldingCostPct)

	// Penalty
	p := scoring.DefaultPenaltyRules()
	v.SetDefault("penalty.banned", p.Banned)
	v.SetDefault("penalty.restricted_very_hard", p.RestrictedVeryHard)
	v.SetDefault("penalty.restricted_hard", p.RestrictedHard)
	v.SetDefault("penalty.restricted_unknown", p.RestrictedUnknown)
	v.SetDefault("penalty.restricted_moderate", p.RestrictedModerate)
	v.SetDefault("penalty.restricted_easy", p.RestrictedEasy)
	v.SetDefault("penalty.varies", p.Varies)
	v.SetDefault("penalty.varies_hard", p.VariesHard)
	v.SetDefault("penalty.unknown_status", p.UnknownStatus)
	v.SetDefault("penalty.legal", p.Legal)
	v.SetDefault("penalty.owner_occupied", p.OwnerOccupied)
	v.SetDefault("penalty.permit_cap", p.PermitCap)

	// State roll-up
	v.SetDefault("state_rollup.min_population", 0)

	// Scoring service
	v.SetDefault("scoring_service.workers", 8)

	// Cache
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.ttl", "24h")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Telemetry
	tr := telemetry.DefaultConfig()
	v.SetDefault("telemetry.tracing.enabled", tr.Enabled)
	v.SetDefault("telemetry.tracing.exporter", tr.Exporter)
	v.SetDefault("telemetry.tracing.endpoint", tr.Endpoint)
	v.SetDefault("telemetry.tracing.environment", "")
	v.SetDefault("telemetry.tracing.release", tr.Release)
	v.SetDefault("telemetry.tracing.sample_rate", tr.SampleRate)
	v.SetDefault("telemetry.logs.enabled", false)
	v.SetDefault("telemetry.logs.endpoint", "localhost:4318")
	v.SetDefault("telemetry.logs.service_name", telemetry.ServiceName)
	v.SetDefault("telemetry.logs.service_version", telemetry.ServiceVersion)
	v.SetDefault("telemetry.logs.environment", "")
	errs := telemetry.DefaultSentryConfig()
	v.SetDefault("telemetry.errors.enabled", errs.Enabled)
	v.SetDefault("telemetry.errors.dsn", "")
	v.SetDefault("telemetry.errors.environment", "")
	v.SetDefault("telemetry.errors.release", errs.Release)
	v.SetDefault("telemetry.errors.sample_rate", errs.SampleRate)
}
