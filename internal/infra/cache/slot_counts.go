package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const slotCountsKey = "parkhub:slots:counts"

// SlotCountCache is a read-through cache in front of the slot counters,
// which dashboards poll aggressively. A nil redis client degrades to the
// underlying store; cache failures are logged and never surface to callers.
type SlotCountCache struct {
	rdb  *redis.Client
	next queries.SlotCountsReadStore
	ttl  time.Duration
}

func NewSlotCountCache(rdb *redis.Client, next queries.SlotCountsReadStore, ttl time.Duration) *SlotCountCache {
	return &SlotCountCache{rdb: rdb, next: next, ttl: ttl}
}

func (c *SlotCountCache) CountByStatus(ctx context.Context) (queries.SlotCounts, error) {
	if c.rdb == nil {
		return c.next.CountByStatus(ctx)
	}

	if data, err := c.rdb.Get(ctx, slotCountsKey).Bytes(); err == nil {
		var counts queries.SlotCounts
		if err := json.Unmarshal(data, &counts); err == nil {
			return counts, nil
		}
	} else if err != redis.Nil {
		slog.Warn("slot count cache read failed", "error", err.Error())
	}

	counts, err := c.next.CountByStatus(ctx)
	if err != nil {
		return queries.SlotCounts{}, err
	}

	if data, err := json.Marshal(counts); err == nil {
		if err := c.rdb.Set(ctx, slotCountsKey, data, c.ttl).Err(); err != nil {
			slog.Warn("slot count cache write failed", "error", err.Error())
		}
	}
	return counts, nil
}

// Invalidate drops the cached counters after a slot or booking mutation.
func (c *SlotCountCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, slotCountsKey).Err(); err != nil {
		slog.Warn("slot count cache invalidation failed", "error", err.Error())
	}
}
