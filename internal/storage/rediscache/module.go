package rediscache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/config"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

// Module wires the stats cache: Redis-backed when an address is configured,
// otherwise a no-op pass-through.
var Module = fx.Options(
	fx.Provide(newStatsCache),
	fx.Invoke(registerLifecycle),
)

func newStatsCache(cfg *config.Config, logger *slog.Logger) usecase.StatsCache {
	if cfg.RedisAddress == "" {
		return NoopCache{}
	}
	return New(cfg.RedisAddress, cfg.StatsCacheTTL, logger)
}

func registerLifecycle(lc fx.Lifecycle, cache usecase.StatsCache) {
	redisCache, ok := cache.(*Cache)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return redisCache.Close()
		},
	})
}
