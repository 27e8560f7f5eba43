package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/strmarket-engine/internal/models"
)

// RedisScoreCache implements ScoreCache on Redis with JSON values and a TTL.
// Reads and writes go through a circuit breaker; while it is open the cache
// behaves as empty.
type RedisScoreCache struct {
	redis   redis.Cmdable
	ttl     time.Duration
	stats   statsRecorder
	prefix  string
	breaker *CircuitBreaker
	logger  *logrus.Logger
}

// NewRedisScoreCache creates a Redis-backed score cache with the default breaker
func NewRedisScoreCache(client redis.Cmdable, ttl time.Duration, logger *logrus.Logger) *RedisScoreCache {
	return NewRedisScoreCacheWithBreaker(client, ttl, DefaultBreakerConfig(), logger)
}

// NewRedisScoreCacheWithBreaker creates a Redis-backed score cache with custom breaker thresholds
func NewRedisScoreCacheWithBreaker(client redis.Cmdable, ttl time.Duration, breaker BreakerConfig, logger *logrus.Logger) *RedisScoreCache {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RedisScoreCache{
		redis:   client,
		ttl:     ttl,
		prefix:  keyPrefix,
		breaker: NewCircuitBreaker("redis_score_cache", breaker, logger),
		logger:  logger,
	}
}

// Get retrieves a cached result. Redis errors, an open breaker and corrupt
// entries all count as misses.
func (c *RedisScoreCache) Get(ctx context.Context, key string) (models.MarketScoreResult, bool) {
	var data string
	found := false
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		v, err := c.redis.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		data, found = v, true
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCircuitOpen) {
			c.logger.WithError(err).WithField("key", key).Warn("Redis error reading cached score")
		}
		c.stats.miss()
		return models.MarketScoreResult{}, false
	}
	if !found {
		c.stats.miss()
		return models.MarketScoreResult{}, false
	}

	var entry ScoreCacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Discarding undecodable cached score")
		c.stats.miss()
		return models.MarketScoreResult{}, false
	}

	c.stats.hit()
	return entry.Result, true
}

// Set stores a result with the cache TTL
func (c *RedisScoreCache) Set(ctx context.Context, key string, result models.MarketScoreResult) {
	now := time.Now()
	entry := ScoreCacheEntry{
		Result:    result,
		CachedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to encode score for cache")
		return
	}

	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.redis.Set(ctx, key, data, c.ttl).Err()
	})
	if err != nil {
		if !errors.Is(err, ErrCircuitOpen) {
			c.logger.WithError(err).WithField("key", key).Warn("Redis error caching score")
		}
		return
	}

	c.stats.set()
	c.logger.WithFields(logrus.Fields{
		"market_id": result.MarketID,
		"ttl":       c.ttl.String(),
	}).Debug("Cached market score")
}

// Clear removes all cached scores using SCAN
func (c *RedisScoreCache) Clear(ctx context.Context) error {
	keys, err := c.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error clearing score cache: %w", err)
	}

	c.logger.WithField("entries", len(keys)).Info("Cleared score cache")
	return nil
}

// BreakerState returns the state of the Redis circuit breaker
func (c *RedisScoreCache) BreakerState() BreakerState {
	return c.breaker.State()
}

// GetStats returns current cache statistics
func (c *RedisScoreCache) GetStats() ScoreCacheStats {
	return c.stats.snapshot()
}

func (c *RedisScoreCache) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.redis.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning score cache keys: %w", err)
	}
	return keys, nil
}
