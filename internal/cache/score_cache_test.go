package cache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/strmarket-engine/internal/models"
)

func sampleMarket() models.Market {
	return models.Market{
		ID:              "tn-gatlinburg",
		State:           "TN",
		Population:      3900,
		MedianHomeValue: decimal.NewFromInt(415000),
		OccupancyRate:   decimal.NewFromInt(61),
		Provenance:      map[string]models.Provenance{models.FieldPopulation: models.ProvenanceMeasured},
	}
}

func sampleResult() models.MarketScoreResult {
	return models.MarketScoreResult{
		MarketID:         "tn-gatlinburg",
		City:             "Gatlinburg",
		State:            "TN",
		Population:       3900,
		RegulationSource: models.SourceCurated,
		TotalScore:       74,
		Grade:            models.GradeBPlus,
		Verdict:          models.VerdictBuy,
	}
}

func TestKey(t *testing.T) {
	m := sampleMarket()
	entry := models.RegulationEntry{LegalityStatus: models.LegalityLegal, PermitDifficulty: models.PermitEasy}
	key := Key(m, entry, "2025.1-abc")

	assert.True(t, strings.HasPrefix(key, "market_score:tn-gatlinburg:"))
	assert.Equal(t, key, Key(sampleMarket(), entry, "2025.1-abc"), "stable for equal markets")

	assert.NotEqual(t, key, Key(m, entry, "2025.2-abc"), "engine fingerprint is part of the key")

	changed := sampleMarket()
	changed.OccupancyRate = decimal.NewFromInt(62)
	assert.NotEqual(t, key, Key(changed, entry, "2025.1-abc"), "inputs are part of the key")

	tightened := entry
	tightened.MaxNightsPerYear = models.Nights(90)
	assert.NotEqual(t, key, Key(m, tightened, "2025.1-abc"), "regulation entry is part of the key")
}

func TestInMemoryScoreCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(time.Minute)

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "k", sampleResult())
	got, found := c.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, sampleResult(), got)

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, 50.0, stats.HitRate())
}

func TestInMemoryScoreCache_ResultsAreDetached(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(time.Minute)

	stored := sampleResult()
	stored.EstimatedFields = []string{models.FieldSaturation, models.FieldMedianHomeValue}
	c.Set(ctx, "k", stored)
	stored.EstimatedFields[0] = "changed after set"

	first, found := c.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, []string{models.FieldSaturation, models.FieldMedianHomeValue}, first.EstimatedFields)

	first.EstimatedFields[1] = "changed after get"

	second, found := c.Get(ctx, "k")
	require.True(t, found)
	assert.Equal(t, []string{models.FieldSaturation, models.FieldMedianHomeValue}, second.EstimatedFields)
}

func TestInMemoryScoreCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(time.Minute)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "k", sampleResult())
	_, found := c.Get(ctx, "k")
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	_, found = c.Get(ctx, "k")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestInMemoryScoreCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(0)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set(ctx, "k", sampleResult())
	now = now.Add(24 * time.Hour)
	_, found := c.Get(ctx, "k")
	assert.True(t, found)
}

func TestInMemoryScoreCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(time.Minute)
	c.Set(ctx, "a", sampleResult())
	c.Set(ctx, "b", sampleResult())
	require.Equal(t, 2, c.Len())

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())
}

func TestInMemoryScoreCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryScoreCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Set(ctx, "shared", sampleResult())
				c.Get(ctx, "shared")
			}
		}()
	}
	wg.Wait()

	stats := c.GetStats()
	assert.Equal(t, int64(1000), stats.Sets)
	assert.Equal(t, int64(1000), stats.Hits+stats.Misses)
}

func TestScoreCacheStats_HitRateEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ScoreCacheStats{}.HitRate())
}
