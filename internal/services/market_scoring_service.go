package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/irfndi/strmarket-engine/internal/cache"
	"github.com/irfndi/strmarket-engine/internal/logging"
	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/scoring"
	"github.com/irfndi/strmarket-engine/internal/telemetry"
)

// MarketScoringConfig configures the scoring service
type MarketScoringConfig struct {
	// Workers bounds the number of markets scored concurrently in a batch
	Workers int
}

// DefaultMarketScoringConfig returns the default service configuration
func DefaultMarketScoringConfig() MarketScoringConfig {
	return MarketScoringConfig{Workers: 8}
}

// BatchResult is the output of one ScoreMarkets call
type BatchResult struct {
	RunID        string                     `json:"run_id"`
	RulesVersion string                     `json:"rules_version"`
	Results      []models.MarketScoreResult `json:"results"`
	CacheHits    int                        `json:"cache_hits"`
	Duration     time.Duration              `json:"duration"`
}

// MarketScoringService runs the scoring engine over raw market records with
// optional result caching, bounded parallelism and tracing.
type MarketScoringService struct {
	engine *scoring.Engine
	cache  cache.ScoreCache
	tracer *telemetry.ScoringTracer
	logger *logrus.Entry
	config MarketScoringConfig
}

// NewMarketScoringService creates the service. scoreCache may be nil to
// disable caching.
func NewMarketScoringService(engine *scoring.Engine, scoreCache cache.ScoreCache, logger *logrus.Logger, config MarketScoringConfig) *MarketScoringService {
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &MarketScoringService{
		engine: engine,
		cache:  scoreCache,
		tracer: telemetry.NewScoringTracer(),
		logger: logging.WithComponent(logger, "market_scoring"),
		config: config,
	}
}

// ScoreMarket normalizes and scores a single raw record
func (s *MarketScoringService) ScoreMarket(ctx context.Context, raw models.RawMarketRecord) (models.MarketScoreResult, error) {
	result, _, err := s.scoreOne(ctx, raw)
	return result, err
}

// ScoreMarkets scores a batch in parallel. Results keep the input order. A
// cancelled context aborts the batch and returns ctx.Err().
func (s *MarketScoringService) ScoreMarkets(ctx context.Context, raws []models.RawMarketRecord) (*BatchResult, error) {
	start := time.Now()
	runID := uuid.New().String()

	ctx, span := s.tracer.TraceBatchScoring(ctx, runID, len(raws), s.engine.RulesVersion())
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"run_id":        runID,
		"batch_size":    len(raws),
		"rules_version": s.engine.RulesVersion(),
		"workers":       s.config.Workers,
	})
	log.Info("Starting batch scoring")

	results := make([]models.MarketScoreResult, len(raws))
	var cacheHits atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			result, cached, err := s.scoreOne(gctx, raws[i])
			if err != nil {
				return err
			}
			if cached {
				cacheHits.Add(1)
			}
			results[i] = result
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// errgroup only sees errors from started tasks; a cancellation that
		// stopped the loop early must still fail the batch.
		err = ctx.Err()
	}
	if err != nil {
		telemetry.RecordError(span, err, "batch scoring aborted")
		telemetry.CaptureException(ctx, fmt.Errorf("batch %s aborted: %w", runID, err))
		log.WithError(err).Warn("Batch scoring aborted")
		return nil, err
	}

	hits := int(cacheHits.Load())
	s.tracer.RecordBatchResult(span, len(results), hits)

	batch := &BatchResult{
		RunID:        runID,
		RulesVersion: s.engine.RulesVersion(),
		Results:      results,
		CacheHits:    hits,
		Duration:     time.Since(start),
	}
	log.WithFields(logrus.Fields{
		"cache_hits":  hits,
		"duration_ms": batch.Duration.Milliseconds(),
	}).Info("Batch scoring completed")

	return batch, nil
}

// RollUpStates summarises batch results per state
func (s *MarketScoringService) RollUpStates(results []models.MarketScoreResult) []models.StateScoreResult {
	return s.engine.RollUpStates(results)
}

// ClearCache drops every cached result
func (s *MarketScoringService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to clear score cache")
		return err
	}
	s.logger.Info("Score cache cleared")
	return nil
}

// CacheStats returns the cache counters, or zero stats when caching is off
func (s *MarketScoringService) CacheStats() cache.ScoreCacheStats {
	if s.cache == nil {
		return cache.ScoreCacheStats{}
	}
	return s.cache.GetStats()
}

func (s *MarketScoringService) scoreOne(ctx context.Context, raw models.RawMarketRecord) (models.MarketScoreResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.MarketScoreResult{}, false, err
	}

	market := s.engine.Normalize(raw)
	ctx, span := s.tracer.TraceMarketScoring(ctx, market.ID)
	defer span.End()

	var key string
	if s.cache != nil {
		entry, _ := s.engine.Regulation(market.ID)
		key = cache.Key(market, entry, s.engine.Fingerprint())
		start := time.Now()
		result, found := s.cache.Get(ctx, key)
		logging.LogCacheOperation(s.logger, "get", key, found, time.Since(start).Milliseconds())
		if found {
			s.tracer.RecordMarketScore(span, result, true)
			return result, true, nil
		}
	}

	result := s.engine.ScoreMarket(market)
	if s.cache != nil {
		s.cache.Set(ctx, key, result)
	}
	s.tracer.RecordMarketScore(span, result, false)

	s.logger.WithFields(logrus.Fields{
		"market_id":         result.MarketID,
		"total_score":       result.TotalScore,
		"verdict":           result.Verdict,
		"regulation_source": result.RegulationSource,
		"estimated_fields":  len(result.EstimatedFields),
	}).Debug("Market scored")

	return result, false, nil
}
