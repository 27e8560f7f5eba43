package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/irfndi/strmarket-engine/internal/cache"
	"github.com/irfndi/strmarket-engine/internal/config"
	"github.com/irfndi/strmarket-engine/internal/database"
	"github.com/irfndi/strmarket-engine/internal/logging"
	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/normalizer"
	"github.com/irfndi/strmarket-engine/internal/regulation"
	"github.com/irfndi/strmarket-engine/internal/scoring"
	"github.com/irfndi/strmarket-engine/internal/services"
	"github.com/irfndi/strmarket-engine/internal/telemetry"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

const serviceName = "marketscore"

// report is the JSON document written to stdout
type report struct {
	RunID        string                     `json:"run_id"`
	RulesVersion string                     `json:"rules_version"`
	Markets      []models.MarketScoreResult `json:"markets,omitempty"`
	States       []models.StateScoreResult  `json:"states"`
	CacheHits    int                        `json:"cache_hits"`
}

type options struct {
	configPath string
	input      string
	clearCache bool
	statesOnly bool
	pretty     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err and returns the exit code: 2 for invalid
// configuration or data files, 1 for everything else.
func reportError(w io.Writer, err error) int {
	if !utils.IsValidationError(err) {
		fmt.Fprintf(w, "%s: %v\n", serviceName, err)
		return 1
	}
	if field := utils.ValidationField(err); field != "" {
		fmt.Fprintf(w, "%s: invalid setting %s: %v\n", serviceName, field, err)
	} else {
		fmt.Fprintf(w, "%s: invalid input: %v\n", serviceName, err)
	}
	return 2
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./configs/config.yaml or ./config.yaml)")
	fs.StringVarP(&opts.input, "input", "i", "", "JSON file holding an array of raw market records")
	fs.BoolVar(&opts.clearCache, "clear-cache", false, "drop cached results before scoring")
	fs.BoolVar(&opts.statesOnly, "states-only", false, "print state roll-ups only")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" && fs.NArg() > 0 {
		opts.input = fs.Arg(0)
	}
	if opts.input == "" && !opts.clearCache {
		return opts, fmt.Errorf("no input file given")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// Load configuration
	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.Environment)
	logger.SetOutput(stderr)

	hook, err := logging.NewOTLPHook(cfg.Telemetry.Logs)
	if err != nil {
		logger.WithError(err).Warn("OTLP log export disabled")
	} else if hook != nil {
		logger.AddHook(hook)
	}
	defer shutdownWithTimeout(logger, "log exporter", hook.Shutdown)

	if err := telemetry.InitSentry(cfg.Telemetry.Errors); err != nil {
		logger.WithError(err).Warn("Error tracking disabled")
	}
	defer shutdownWithTimeout(logger, "error tracking", telemetry.FlushSentry)
	defer func() {
		// aborted batches are reported by the service
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			telemetry.CaptureException(ctx, err)
		}
	}()

	// stdout carries the report
	if err := telemetry.InitTelemetryTo(cfg.Telemetry.Tracing, stderr); err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer shutdownWithTimeout(logger, "tracer", telemetry.Shutdown)

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}
	logging.LogStartup(logger, serviceName, telemetry.ServiceVersion, engine.RulesVersion())
	defer logging.LogShutdown(logger, serviceName, "batch complete")

	scoreCache, closeCache, err := buildCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	svc := services.NewMarketScoringService(engine, scoreCache, logger, services.MarketScoringConfig{
		Workers: cfg.ScoringService.Workers,
	})

	if opts.clearCache {
		if err := svc.ClearCache(ctx); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		if opts.input == "" {
			return nil
		}
	}

	raws, err := readRecords(opts.input)
	if err != nil {
		return err
	}

	batch, err := svc.ScoreMarkets(ctx, raws)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	out := report{
		RunID:        batch.RunID,
		RulesVersion: batch.RulesVersion,
		States:       svc.RollUpStates(batch.Results),
		CacheHits:    batch.CacheHits,
	}
	if !opts.statesOnly {
		out.Markets = batch.Results
	}

	enc := json.NewEncoder(stdout)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func buildEngine(cfg *config.Config, logger *logrus.Logger) (*scoring.Engine, error) {
	registry := regulation.NewCuratedRegistry()
	if cfg.Regulation.OverridesPath != "" {
		overrides, err := regulation.LoadOverrides(cfg.Regulation.OverridesPath, logger)
		if err != nil {
			return nil, err
		}
		registry = registry.WithOverrides(overrides)
	}

	norm, err := normalizer.New(cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	engine, err := scoring.NewEngine(scoring.Options{
		Regulations:        registry,
		Normalizer:         norm,
		Investment:         &cfg.Investment,
		Penalty:            &cfg.Penalty,
		MinStatePopulation: cfg.StateRollup.MinPopulation,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return engine, nil
}

func buildCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (cache.ScoreCache, func(), error) {
	noop := func() {}
	if !cfg.Cache.Enabled {
		return nil, noop, nil
	}

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient, err := database.NewRedisConnection(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, noop, err
		}
		return cache.NewRedisScoreCache(redisClient.Client, cfg.Cache.GetTTL(), logger), redisClient.Close, nil
	default:
		return cache.NewInMemoryScoreCache(cfg.Cache.GetTTL()), noop, nil
	}
}

func readRecords(path string) ([]models.RawMarketRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	var raws []models.RawMarketRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", path, err)
	}
	return raws, nil
}

func shutdownWithTimeout(logger *logrus.Logger, name string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.WithError(err).Warnf("Failed to shut down %s", name)
	}
}
