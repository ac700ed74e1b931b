package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/dashboard"
)

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// StatsCache keeps dashboard counters in redis for a short TTL.
// Dashboard reads may lag writes, so serving a slightly stale snapshot
// is fine; any redis failure degrades to a direct database read.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *StatsCache {
	return &StatsCache{
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

func (c *StatsCache) key(shopID string) string {
	return "dashboard:stats:" + shopID
}

func (c *StatsCache) Get(ctx context.Context, shopID string) (*dashboard.Stats, bool) {
	raw, err := c.rdb.Get(ctx, c.key(shopID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("stats cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var stats dashboard.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, shopID string, stats *dashboard.Stats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(shopID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("stats cache write failed", zap.Error(err))
	}
}

// Compile-time check
var _ dashboard.Cache = (*StatsCache)(nil)
