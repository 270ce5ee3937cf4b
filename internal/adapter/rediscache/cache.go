package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	"github.com/vahanex/vahanex-server/pkg/metrics"
)

const (
	statsKey = "schedules:count"

	serviceName = "vahanex-server"
)

// Client wraps the Redis client
type Client struct {
	Client *redis.Client
}

// New creates a new Redis client
func New(addr, password string, db int) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &Client{Client: rdb}
}

// Ping tests the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// StatsCache keeps the dashboard counters in Redis so that the count endpoint
// does not hit Postgres on every poll. Entries expire after TTL; mutations
// invalidate the key eagerly.
type StatsCache struct {
	client *Client
	ttl    time.Duration

	l logger.Logger
}

func NewStatsCache(client *Client, ttl time.Duration, log logger.Logger) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
		l:      log,
	}
}

// Get returns the cached snapshot, or ok=false on a miss.
func (c *StatsCache) Get(ctx context.Context) (models.StatsSnapshot, bool, error) {
	raw, err := c.client.Client.Get(ctx, statsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordStatsCacheLookup(serviceName, false)
			return models.StatsSnapshot{}, false, nil
		}
		return models.StatsSnapshot{}, false, fmt.Errorf("stats cache: Get: %w", err)
	}

	var stats models.StatsSnapshot
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		// A corrupted entry behaves like a miss and gets rewritten.
		c.l.Warn(ctx, "dropping malformed stats cache entry", "err", err.Error())
		_ = c.Invalidate(ctx)
		metrics.RecordStatsCacheLookup(serviceName, false)
		return models.StatsSnapshot{}, false, nil
	}

	metrics.RecordStatsCacheLookup(serviceName, true)
	return stats, true, nil
}

func (c *StatsCache) Set(ctx context.Context, stats models.StatsSnapshot) error {
	body, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache: Set: %w", err)
	}

	if err := c.client.Client.Set(ctx, statsKey, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache: Set: %w", err)
	}
	return nil
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("stats cache: Invalidate: %w", err)
	}
	return nil
}
