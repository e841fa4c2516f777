package rediscache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/polkiloo/loyaltyhub/internal/config"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

type clientStub struct {
	getCmd *redis.StringCmd
	setCmd *redis.StatusCmd
	sets   int
}

func (c *clientStub) Get(context.Context, string) *redis.StringCmd { return c.getCmd }
func (c *clientStub) Set(context.Context, string, interface{}, time.Duration) *redis.StatusCmd {
	c.sets++
	return c.setCmd
}
func (c *clientStub) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func stringCmd(val string, err error) *redis.StringCmd {
	cmd := redis.NewStringCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(val)
	}
	return cmd
}

func statusCmd(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	}
	return cmd
}

func TestCacheGet(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		cache := &Cache{
			client: &clientStub{getCmd: stringCmd(`{"total_users":7}`, nil)},
			ttl:    time.Second,
			logger: testLogger(),
		}
		stats, ok := cache.Get(context.Background())
		if !ok || stats.TotalUsers != 7 {
			t.Fatalf("expected hit with 7 users, got ok=%v stats=%+v", ok, stats)
		}
	})

	t.Run("miss on absent key", func(t *testing.T) {
		cache := &Cache{client: &clientStub{getCmd: stringCmd("", redis.Nil)}, ttl: time.Second, logger: testLogger()}
		if _, ok := cache.Get(context.Background()); ok {
			t.Fatal("expected miss")
		}
	})

	t.Run("miss on redis error", func(t *testing.T) {
		cache := &Cache{client: &clientStub{getCmd: stringCmd("", errors.New("down"))}, ttl: time.Second, logger: testLogger()}
		if _, ok := cache.Get(context.Background()); ok {
			t.Fatal("redis failure must be a miss")
		}
	})

	t.Run("miss on bad payload", func(t *testing.T) {
		cache := &Cache{client: &clientStub{getCmd: stringCmd("not-json", nil)}, ttl: time.Second, logger: testLogger()}
		if _, ok := cache.Get(context.Background()); ok {
			t.Fatal("undecodable payload must be a miss")
		}
	})
}

func TestCacheSet(t *testing.T) {
	client := &clientStub{setCmd: statusCmd(nil)}
	cache := &Cache{client: client, ttl: time.Second, logger: testLogger()}

	cache.Set(context.Background(), &model.LoyaltyStats{TotalUsers: 3})
	if client.sets != 1 {
		t.Fatalf("expected one write, got %d", client.sets)
	}

	client.setCmd = statusCmd(errors.New("down"))
	cache.Set(context.Background(), &model.LoyaltyStats{TotalUsers: 3})
}

func TestNoopCache(t *testing.T) {
	var cache NoopCache
	cache.Set(context.Background(), &model.LoyaltyStats{TotalUsers: 1})
	if _, ok := cache.Get(context.Background()); ok {
		t.Fatal("noop cache must always miss")
	}
}

func TestNewStatsCacheProvider(t *testing.T) {
	if _, ok := newStatsCache(&config.Config{}, testLogger()).(NoopCache); !ok {
		t.Fatal("expected noop cache without redis address")
	}

	cache, ok := newStatsCache(&config.Config{RedisAddress: "localhost:6379", StatsCacheTTL: time.Second}, testLogger()).(*Cache)
	if !ok {
		t.Fatal("expected redis cache with address configured")
	}
	_ = cache.Close()
}
