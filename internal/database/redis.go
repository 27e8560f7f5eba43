package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/strmarket-engine/internal/config"
)

// RedisClient owns the connection backing the Redis score cache
type RedisClient struct {
	Client *redis.Client
	logger *logrus.Logger
}

// NewRedisConnection dials Redis and verifies the connection with a ping
func NewRedisConnection(ctx context.Context, cfg config.RedisConfig, logger *logrus.Logger) (*RedisClient, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	client := &RedisClient{Client: rdb, logger: logger}

	// Test the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.HealthCheck(pingCtx); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr(), err)
	}

	logger.WithFields(logrus.Fields{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	}).Info("Successfully connected to Redis")

	return client, nil
}

// Close releases the connection; safe on a nil client
func (r *RedisClient) Close() {
	if r == nil || r.Client == nil {
		return
	}
	if err := r.Client.Close(); err != nil {
		r.logger.WithError(err).Warn("Failed to close Redis connection")
		return
	}
	r.logger.Info("Redis connection closed")
}

// HealthCheck pings the server
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return r.Client.Ping(ctx).Err()
}
