package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/strmarket-engine/internal/cache"
	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/scoring"
)

func f(v float64) *float64 { return &v }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestService(t *testing.T, scoreCache cache.ScoreCache, workers int) *MarketScoringService {
	t.Helper()
	engine, err := scoring.NewEngine(scoring.Options{})
	require.NoError(t, err)
	return NewMarketScoringService(engine, scoreCache, quietLogger(), MarketScoringConfig{Workers: workers})
}

func gatlinburg() models.RawMarketRecord {
	return models.RawMarketRecord{
		City:        "Gatlinburg",
		State:       "TN",
		Population:  f(3900),
		Housing:     &models.RawHousing{MedianHomeValueK: f(415)},
		Rental:      &models.RawRental{AvgADR: f(265.5), Occupancy: f(0.61)},
		MarketScore: &models.RawMarketScore{Headroom: f(35), Seasonality: f(72)},
	}
}

func irvine() models.RawMarketRecord {
	return models.RawMarketRecord{
		City:       "Irvine",
		State:      "CA",
		Population: f(310000),
		Housing:    &models.RawHousing{MedianHomeValue: f(1250000)},
		Rental:     &models.RawRental{AvgADR: f(240), Occupancy: f(68)},
	}
}

func sampleBatch(n int) []models.RawMarketRecord {
	states := []string{"TN", "TX", "FL", "CO", "KS"}
	out := make([]models.RawMarketRecord, n)
	for i := range out {
		out[i] = models.RawMarketRecord{
			City:       fmt.Sprintf("Town %d", i),
			State:      states[i%len(states)],
			Population: f(float64(5000 + i*1000)),
			Rental:     &models.RawRental{AvgADR: f(150 + float64(i)), Occupancy: f(0.5)},
		}
	}
	return out
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestNewMarketScoringService_Defaults(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.Options{})
	require.NoError(t, err)

	s := NewMarketScoringService(engine, nil, nil, MarketScoringConfig{})
	assert.Equal(t, 1, s.config.Workers)
	assert.NotNil(t, s.logger)
	assert.Equal(t, 8, DefaultMarketScoringConfig().Workers)
}

func TestScoreMarket(t *testing.T) {
	s := newTestService(t, nil, 2)

	result, err := s.ScoreMarket(context.Background(), gatlinburg())
	require.NoError(t, err)

	assert.Equal(t, "tn-gatlinburg", result.MarketID)
	assert.Equal(t, models.SourceCurated, result.RegulationSource)
	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
}

func TestScoreMarket_MatchesEngine(t *testing.T) {
	s := newTestService(t, nil, 1)

	result, err := s.ScoreMarket(context.Background(), irvine())
	require.NoError(t, err)

	direct := s.engine.ScoreRecord(irvine())
	assert.Equal(t, toJSON(t, direct), toJSON(t, result))
	assert.Less(t, result.Verdict.Rank(), models.VerdictHold.Rank())
}

func TestScoreMarket_CancelledContext(t *testing.T) {
	s := newTestService(t, nil, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ScoreMarket(ctx, gatlinburg())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreMarkets_PreservesOrder(t *testing.T) {
	s := newTestService(t, nil, 4)
	raws := sampleBatch(25)

	batch, err := s.ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)
	require.Len(t, batch.Results, len(raws))

	for i, raw := range raws {
		assert.Equal(t, models.NewMarketID(raw.State, raw.City), batch.Results[i].MarketID)
	}
	assert.NotEmpty(t, batch.RunID)
	assert.Equal(t, scoring.RulesVersion, batch.RulesVersion)
	assert.Equal(t, 0, batch.CacheHits)
}

func TestScoreMarkets_SequentialAndParallelAgree(t *testing.T) {
	raws := sampleBatch(12)

	seq, err := newTestService(t, nil, 1).ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)
	par, err := newTestService(t, nil, 6).ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)

	assert.Equal(t, toJSON(t, seq.Results), toJSON(t, par.Results))
}

func TestScoreMarkets_Empty(t *testing.T) {
	s := newTestService(t, nil, 2)

	batch, err := s.ScoreMarkets(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
}

func TestScoreMarkets_CancelledContext(t *testing.T) {
	s := newTestService(t, nil, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := s.ScoreMarkets(ctx, sampleBatch(10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, batch)
}

func TestScoreMarkets_InMemoryCache(t *testing.T) {
	scoreCache := cache.NewInMemoryScoreCache(time.Hour)
	s := newTestService(t, scoreCache, 3)
	raws := sampleBatch(6)

	first, err := s.ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)
	assert.Equal(t, 0, first.CacheHits)

	second, err := s.ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)
	assert.Equal(t, len(raws), second.CacheHits)
	assert.Equal(t, toJSON(t, first.Results), toJSON(t, second.Results))

	stats := s.CacheStats()
	assert.Equal(t, int64(6), stats.Hits)
	assert.Equal(t, int64(6), stats.Misses)
	assert.Equal(t, int64(6), stats.Sets)
}

func TestScoreMarkets_CacheKeyTracksEngineTables(t *testing.T) {
	scoreCache := cache.NewInMemoryScoreCache(time.Hour)
	stock := newTestService(t, scoreCache, 1)
	_, err := stock.ScoreMarket(context.Background(), irvine())
	require.NoError(t, err)

	penalty := scoring.DefaultPenaltyRules()
	penalty.Banned = 80
	engine, err := scoring.NewEngine(scoring.Options{Penalty: &penalty})
	require.NoError(t, err)
	tuned := NewMarketScoringService(engine, scoreCache, quietLogger(), MarketScoringConfig{Workers: 1})

	result, err := tuned.ScoreMarket(context.Background(), irvine())
	require.NoError(t, err)
	assert.Equal(t, 80, result.Penalty.PointsDeducted, "a retuned engine must not reuse cached results")
	assert.Equal(t, int64(0), scoreCache.GetStats().Hits)
}

func TestScoreMarkets_RedisCache(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	scoreCache := cache.NewRedisScoreCache(client, time.Hour, quietLogger())
	svc := newTestService(t, scoreCache, 2)
	raws := []models.RawMarketRecord{gatlinburg(), irvine()}

	first, err := svc.ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)
	second, err := svc.ScoreMarkets(context.Background(), raws)
	require.NoError(t, err)

	assert.Equal(t, 2, second.CacheHits)
	assert.JSONEq(t, toJSON(t, first.Results), toJSON(t, second.Results))

	require.NoError(t, svc.ClearCache(context.Background()))
	assert.Empty(t, s.Keys())
}

func TestRollUpStates(t *testing.T) {
	s := newTestService(t, nil, 2)

	batch, err := s.ScoreMarkets(context.Background(), sampleBatch(10))
	require.NoError(t, err)

	states := s.RollUpStates(batch.Results)
	require.Len(t, states, 5)
	for i := 1; i < len(states); i++ {
		assert.Less(t, states[i-1].State, states[i].State)
	}
	for _, st := range states {
		assert.Equal(t, 2, st.MarketCount)
	}
}

func TestClearCache_NoCache(t *testing.T) {
	s := newTestService(t, nil, 1)
	assert.NoError(t, s.ClearCache(context.Background()))
	assert.Equal(t, cache.ScoreCacheStats{}, s.CacheStats())
}

func TestScoreMarket_LogsCacheReads(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	engine, err := scoring.NewEngine(scoring.Options{})
	require.NoError(t, err)
	svc := NewMarketScoringService(engine, cache.NewInMemoryScoreCache(time.Hour), logger, MarketScoringConfig{Workers: 1})

	for range 2 {
		_, err := svc.ScoreMarket(context.Background(), gatlinburg())
		require.NoError(t, err)
	}

	var hits []bool
	for _, entry := range hook.AllEntries() {
		if entry.Data["event"] != "cache_operation" {
			continue
		}
		assert.Equal(t, "market_scoring", entry.Data["component"])
		assert.Equal(t, "get", entry.Data["operation"])
		hits = append(hits, entry.Data["hit"].(bool))
	}
	assert.Equal(t, []bool{false, true}, hits)
}

func TestScoreMarkets_AbortReportedToErrorTracking(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")
	var captured []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			captured = append(captured, event)
			return nil
		},
	})
	require.NoError(t, err)
	ctx := sentry.SetHubOnContext(context.Background(), sentry.NewHub(client, sentry.NewScope()))

	ctx, cancel := context.WithCancel(ctx)
	cancel()

	svc := newTestService(t, nil, 2)
	_, err = svc.ScoreMarkets(ctx, sampleBatch(4))
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, captured, 1)
	var values []string
	for _, ex := range captured[0].Exception {
		values = append(values, ex.Value)
	}
	assert.Contains(t, strings.Join(values, "\n"), "aborted: context canceled")
}
