package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventmanagement/internal/domain"

	"github.com/redis/go-redis/v9"
)

// StatsCache stores per-account event stats in Redis as JSON.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewStatsCache returns a Redis backed domain.EventStatsCache. Entries expire after ttl or at
// their ValidUntil, whichever comes first.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, now: time.Now}
}

func (c *StatsCache) Get(ctx context.Context, accountID string) (*domain.CachedEventStats, error) {
	raw, err := c.client.Get(ctx, statsKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("get cached stats: %w", err)
	}
	var entry domain.CachedEventStats
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return &entry, nil
}

// Set stores entry until ValidUntil or the configured ttl. An entry that is already stale is dropped.
func (c *StatsCache) Set(ctx context.Context, accountID string, entry *domain.CachedEventStats) error {
	ttl := c.expiry(entry)
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey(accountID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("set cached stats: %w", err)
	}
	return nil
}

func (c *StatsCache) Invalidate(ctx context.Context, accountID string) error {
	if err := c.client.Del(ctx, statsKey(accountID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached stats: %w", err)
	}
	return nil
}

func (c *StatsCache) expiry(entry *domain.CachedEventStats) time.Duration {
	if entry.ValidUntil.IsZero() {
		return c.ttl
	}
	return min(c.ttl, entry.ValidUntil.Sub(c.now()))
}

func statsKey(accountID string) string {
	return "stats:account:" + accountID
}

// NoopStatsCache never holds anything. It is used when no Redis is configured.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(context.Context, string) (*domain.CachedEventStats, error) {
	return nil, domain.ErrCacheMiss
}

func (NoopStatsCache) Set(context.Context, string, *domain.CachedEventStats) error { return nil }

func (NoopStatsCache) Invalidate(context.Context, string) error { return nil }

var (
	_ domain.EventStatsCache = (*StatsCache)(nil)
	_ domain.EventStatsCache = NoopStatsCache{}
)
