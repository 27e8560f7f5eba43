package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/strmarket-engine/internal/normalizer"
	"github.com/irfndi/strmarket-engine/internal/scoring"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// chdirTemp runs the test from an empty directory so no stray config.yaml or
// .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	config, err := Load()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "", config.Regulation.OverridesPath)
	assert.Equal(t, normalizer.DefaultConfig(), config.Normalizer)
	assert.Equal(t, scoring.DefaultInvestmentAssumptions(), config.Investment)
	assert.Equal(t, scoring.DefaultPenaltyRules(), config.Penalty)
	assert.Equal(t, int64(0), config.StateRollup.MinPopulation)
	assert.Equal(t, 8, config.ScoringService.Workers)
	assert.False(t, config.Cache.Enabled)
	assert.Equal(t, CacheBackendMemory, config.Cache.Backend)
	assert.Equal(t, 24*time.Hour, config.Cache.GetTTL())
	assert.Equal(t, "localhost:6379", config.Redis.Addr())
	assert.False(t, config.Telemetry.Tracing.Enabled)
	assert.Equal(t, "development", config.Telemetry.Tracing.Environment)
	assert.False(t, config.Telemetry.Logs.Enabled)
	assert.False(t, config.Telemetry.Errors.Active())
	assert.Equal(t, "development", config.Telemetry.Errors.Environment)
}

func TestLoad_ErrorTrackingFromEnv(t *testing.T) {
	chdirTemp(t)

	t.Setenv("TELEMETRY_ERRORS_ENABLED", "true")
	t.Setenv("TELEMETRY_ERRORS_DSN", "https://key@sentry.example.com/7")
	t.Setenv("TELEMETRY_ERRORS_SAMPLE_RATE", "0.5")

	config, err := Load()
	require.NoError(t, err)
	assert.True(t, config.Telemetry.Errors.Active())
	assert.Equal(t, "https://key@sentry.example.com/7", config.Telemetry.Errors.DSN)
	assert.Equal(t, 0.5, config.Telemetry.Errors.SampleRate)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)

	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PENALTY_BANNED", "70")
	t.Setenv("INVESTMENT_MORTGAGE_RATE_PCT", "6.25")
	t.Setenv("STATE_ROLLUP_MIN_POPULATION", "25000")
	t.Setenv("SCORING_SERVICE_WORKERS", "2")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_BACKEND", "REDIS")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "error", config.LogLevel)
	assert.Equal(t, 70, config.Penalty.Banned)
	assert.Equal(t, 6.25, config.Investment.MortgageRatePct)
	assert.Equal(t, int64(25000), config.StateRollup.MinPopulation)
	assert.Equal(t, 2, config.ScoringService.Workers)
	assert.True(t, config.Cache.Enabled)
	assert.Equal(t, CacheBackendRedis, config.Cache.Backend)
	assert.Equal(t, 90*time.Minute, config.Cache.GetTTL())
	assert.Equal(t, "cache.internal:6380", config.Redis.Addr())
	assert.Equal(t, 2, config.Redis.DB)
	assert.Equal(t, "production", config.Telemetry.Tracing.Environment)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := `
environment: staging
regulation:
  overrides_path: data/overrides.yaml
normalizer:
  defaults:
    occupancy_rate: 50
penalty:
  banned: 65
scoring_service:
  workers: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(yaml), 0o644))

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", config.Environment)
	assert.Equal(t, "data/overrides.yaml", config.Regulation.OverridesPath)
	assert.Equal(t, 50.0, config.Normalizer.Defaults.OccupancyRate)
	assert.Equal(t, 350000.0, config.Normalizer.Defaults.MedianHomeValue, "unset keys keep defaults")
	assert.Equal(t, 65, config.Penalty.Banned)
	assert.Equal(t, 4, config.ScoringService.Workers)
}

func TestLoadFile_Missing(t *testing.T) {
	chdirTemp(t)

	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCORING_SERVICE_WORKERS=3\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SCORING_SERVICE_WORKERS") })

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, config.ScoringService.Workers)
}

func TestLoad_RejectsWeakBannedPenalty(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PENALTY_BANNED", "30")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
	assert.Equal(t, "penalty.banned", utils.ValidationField(err))
}

func validConfig() Config {
	return Config{
		Environment:    "test",
		Normalizer:     normalizer.DefaultConfig(),
		Investment:     scoring.DefaultInvestmentAssumptions(),
		Penalty:        scoring.DefaultPenaltyRules(),
		ScoringService: ScoringServiceConfig{Workers: 1},
		Cache:          CacheConfig{Enabled: true, Backend: CacheBackendMemory, TTL: "1h"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero workers", func(c *Config) { c.ScoringService.Workers = 0 }, "scoring_service.workers"},
		{"negative min population", func(c *Config) { c.StateRollup.MinPopulation = -1 }, "state_rollup.min_population"},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, "cache.backend"},
		{"bad ttl", func(c *Config) { c.Cache.TTL = "soon" }, "cache.ttl"},
		{"negative ttl", func(c *Config) { c.Cache.TTL = "-1m" }, "cache.ttl"},
		{"disabled cache skips backend", func(c *Config) { c.Cache = CacheConfig{Backend: "memcached"} }, ""},
		{"negative penalty", func(c *Config) { c.Penalty.PermitCap = -1 }, "penalty.permit_cap"},
		{"bad investment", func(c *Config) { c.Investment.DownPaymentPct = 120 }, "investment.down_payment_pct"},
		{"bad normalizer", func(c *Config) { c.Normalizer.SeasonalitySmoothing = 0 }, "normalizer.seasonality_smoothing"},
		{"unknown exporter", func(c *Config) { c.Telemetry.Tracing.Exporter = "zipkin" }, "telemetry.tracing.exporter"},
		{"bad sample rate", func(c *Config) { c.Telemetry.Tracing.SampleRate = 2 }, "telemetry.tracing.sample_rate"},
		{"bad error sample rate", func(c *Config) { c.Telemetry.Errors.SampleRate = -0.1 }, "telemetry.errors.sample_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.field, utils.ValidationField(err))
		})
	}
}

func TestCacheConfig_GetTTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, CacheConfig{TTL: "5m"}.GetTTL())
	assert.Equal(t, time.Duration(0), CacheConfig{TTL: ""}.GetTTL())
	assert.Equal(t, time.Duration(0), CacheConfig{TTL: "bogus"}.GetTTL())
}
