package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

const statsKey = "loyalty:stats"

// redisClient is the subset of redis.Client the cache relies on.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// Cache stores the derived stats snapshot in Redis with a TTL. Every Redis
// failure is treated as a cache miss so the dashboard keeps working when the
// cache is down.
type Cache struct {
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Redis-backed stats cache.
func New(addr string, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot when present and decodable.
func (c *Cache) Get(ctx context.Context) (*model.LoyaltyStats, bool) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var stats model.LoyaltyStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		c.logger.Warn("stats cache decode failed", slog.String("error", err.Error()))
		return nil, false
	}
	return &stats, true
}

// Set stores the snapshot; failures are logged and otherwise ignored.
func (c *Cache) Set(ctx context.Context, stats *model.LoyaltyStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		c.logger.Warn("stats cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, statsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", slog.String("error", err.Error()))
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// NoopCache is used when no Redis address is configured; every read misses.
type NoopCache struct{}

// Get always reports a miss.
func (NoopCache) Get(context.Context) (*model.LoyaltyStats, bool) { return nil, false }

// Set discards the snapshot.
func (NoopCache) Set(context.Context, *model.LoyaltyStats) {}

var _ usecase.StatsCache = (*Cache)(nil)
var _ usecase.StatsCache = NoopCache{}
