package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/irfndi/strmarket-engine/internal/models"
)

const keyPrefix = "market_score:"

// ScoreCache memoises market score results. Results are pure functions of
// the normalized market, its regulation entry and the engine tables, so a
// cached value is only a shortcut and never changes the outcome.
type ScoreCache interface {
	// Get returns the cached result for key
	Get(ctx context.Context, key string) (models.MarketScoreResult, bool)
	// Set stores a result under key
	Set(ctx context.Context, key string, result models.MarketScoreResult)
	// Clear removes all cached results
	Clear(ctx context.Context) error
	// GetStats returns hit/miss/set counters
	GetStats() ScoreCacheStats
}

// Key builds the cache key for a market: the market ID plus a fingerprint of
// every normalized input, the regulation entry and the engine fingerprint.
func Key(m models.Market, entry models.RegulationEntry, engineFingerprint string) string {
	h := xxhash.New()
	for _, v := range []interface{}{m, entry} {
		data, err := json.Marshal(v)
		if err != nil {
			data = []byte(m.ID)
		}
		_, _ = h.Write(data)
		_, _ = h.WriteString("|")
	}
	_, _ = h.WriteString(engineFingerprint)

	var sum [8]byte
	return keyPrefix + m.ID + ":" + hex.EncodeToString(h.Sum(sum[:0]))
}

// ScoreCacheEntry is a cached result with metadata
type ScoreCacheEntry struct {
	Result    models.MarketScoreResult `json:"result"`
	CachedAt  time.Time                `json:"cached_at"`
	ExpiresAt time.Time                `json:"expires_at"`
}

// ScoreCacheStats tracks cache performance
type ScoreCacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
}

// HitRate returns hits as a percentage of lookups
func (s ScoreCacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

type statsRecorder struct {
	mu    sync.RWMutex
	stats ScoreCacheStats
}

func (r *statsRecorder) hit() {
	r.mu.Lock()
	r.stats.Hits++
	r.mu.Unlock()
}

func (r *statsRecorder) miss() {
	r.mu.Lock()
	r.stats.Misses++
	r.mu.Unlock()
}

func (r *statsRecorder) set() {
	r.mu.Lock()
	r.stats.Sets++
	r.mu.Unlock()
}

func (r *statsRecorder) snapshot() ScoreCacheStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// InMemoryScoreCache is a process-local ScoreCache. A zero or negative TTL
// keeps entries until Clear.
type InMemoryScoreCache struct {
	mu      sync.RWMutex
	entries map[string]ScoreCacheEntry
	ttl     time.Duration
	stats   statsRecorder
	now     func() time.Time
}

// NewInMemoryScoreCache creates an empty in-memory cache
func NewInMemoryScoreCache(ttl time.Duration) *InMemoryScoreCache {
	return &InMemoryScoreCache{
		entries: make(map[string]ScoreCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a cached result, dropping it if it has expired
func (c *InMemoryScoreCache) Get(_ context.Context, key string) (models.MarketScoreResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.stats.miss()
		return models.MarketScoreResult{}, false
	}
	if c.ttl > 0 && c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Double-check the entry was not refreshed meanwhile
		if current, exists := c.entries[key]; exists && c.now().After(current.ExpiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.stats.miss()
		return models.MarketScoreResult{}, false
	}

	c.stats.hit()
	return detach(entry.Result), true
}

// Set stores a result
func (c *InMemoryScoreCache) Set(_ context.Context, key string, result models.MarketScoreResult) {
	now := c.now()
	c.mu.Lock()
	c.entries[key] = ScoreCacheEntry{Result: detach(result), CachedAt: now, ExpiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
	c.stats.set()
}

// detach copies the slice fields so callers never share memory with an entry
func detach(result models.MarketScoreResult) models.MarketScoreResult {
	result.EstimatedFields = slices.Clone(result.EstimatedFields)
	return result
}

// Clear removes every entry
func (c *InMemoryScoreCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]ScoreCacheEntry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted
func (c *InMemoryScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns current cache statistics
func (c *InMemoryScoreCache) GetStats() ScoreCacheStats {
	return c.stats.snapshot()
}
