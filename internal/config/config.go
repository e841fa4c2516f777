package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	PromoServiceAddress string
	PromoLookupTimeout  time.Duration
	SessionSecret       string
	RedisAddress        string
	StatsCacheTTL       time.Duration
	TierReviewInterval  time.Duration
	WorkerPoolSize      int
	ReviewBatchSize     int
	ShutdownTimeout     time.Duration
	SeedDemoData        bool
	SeedRandSeed        int64
	SeedUserCount       int
}

const (
	defaultRunAddress         = ":8080"
	defaultSessionSecret      = "change-me-in-production"
	defaultPromoLookupTimeout = 3 * time.Second
	defaultStatsCacheTTL      = 30 * time.Second
	defaultTierReviewInterval = 5 * time.Second
	defaultWorkerPoolSize     = 4
	defaultReviewBatchSize    = 32
	defaultShutdownTimeout    = 10 * time.Second
	defaultSeedRandSeed       = 1
	defaultSeedUserCount      = 50
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		PromoServiceAddress: getString(lookup, "PROMO_SERVICE_ADDRESS", ""),
		PromoLookupTimeout:  getDuration(lookup, "PROMO_LOOKUP_TIMEOUT", defaultPromoLookupTimeout),
		SessionSecret:       getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		RedisAddress:        getString(lookup, "REDIS_ADDRESS", ""),
		StatsCacheTTL:       getDuration(lookup, "STATS_CACHE_TTL", defaultStatsCacheTTL),
		TierReviewInterval:  getDuration(lookup, "TIER_REVIEW_INTERVAL", defaultTierReviewInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ReviewBatchSize:     getInt(lookup, "REVIEW_BATCH_SIZE", defaultReviewBatchSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedDemoData:        getBool(lookup, "SEED_DEMO_DATA", false),
		SeedRandSeed:        getInt64(lookup, "SEED_RAND_SEED", defaultSeedRandSeed),
		SeedUserCount:       getInt(lookup, "SEED_USER_COUNT", defaultSeedUserCount),
	}

	fs := flag.NewFlagSet("loyaltyhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reviewIntervalStr  = cfg.TierReviewInterval.String()
		lookupTimeoutStr   = cfg.PromoLookupTimeout.String()
		cacheTTLStr        = cfg.StatsCacheTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PromoServiceAddress, "r", cfg.PromoServiceAddress, "Promotions service base URL (empty uses built-in promo table)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the stats cache (empty disables caching)")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent tier review workers")
	fs.StringVar(&reviewIntervalStr, "review-interval", reviewIntervalStr, "Interval between tier review polls")
	fs.StringVar(&lookupTimeoutStr, "promo-timeout", lookupTimeoutStr, "Timeout for promo code lookups")
	fs.StringVar(&cacheTTLStr, "stats-ttl", cacheTTLStr, "TTL for cached loyalty stats")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.ReviewBatchSize, "review-batch", cfg.ReviewBatchSize, "Maximum users per tier review batch")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "Seed deterministic demo data on startup")
	fs.Int64Var(&cfg.SeedRandSeed, "seed-rand", cfg.SeedRandSeed, "PRNG seed for demo data generation")
	fs.IntVar(&cfg.SeedUserCount, "seed-users", cfg.SeedUserCount, "Number of demo users to seed")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TierReviewInterval, err = time.ParseDuration(reviewIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid review interval: %w", err)
	}

	if cfg.PromoLookupTimeout, err = time.ParseDuration(lookupTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid promo lookup timeout: %w", err)
	}

	if cfg.StatsCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ReviewBatchSize <= 0 {
		cfg.ReviewBatchSize = defaultReviewBatchSize
	}

	if cfg.TierReviewInterval <= 0 {
		cfg.TierReviewInterval = defaultTierReviewInterval
	}

	if cfg.PromoLookupTimeout <= 0 {
		cfg.PromoLookupTimeout = defaultPromoLookupTimeout
	}

	if cfg.StatsCacheTTL <= 0 {
		cfg.StatsCacheTTL = defaultStatsCacheTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SeedUserCount <= 0 {
		cfg.SeedUserCount = defaultSeedUserCount
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
