package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodhub/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// IdempotencyCache remembers which order an Idempotency-Key produced.
// A key is first reserved with a pending marker and later pointed at the
// order id once the order is committed.
type IdempotencyCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewIdempotencyCache(client *redis.Client, ttl time.Duration) *IdempotencyCache {
	return &IdempotencyCache{Client: client, TTL: ttl}
}

func (c *IdempotencyCache) key(userID int64, idempotencyKey string) string {
	return "order:idem:" + strconv.FormatInt(userID, 10) + ":" + idempotencyKey
}

// Reserve claims the key for userID. When the key is already taken it
// returns the order id stored under it, or zero while the first request is
// still running.
func (c *IdempotencyCache) Reserve(ctx context.Context, userID int64, idempotencyKey string) (int64, bool, error) {
	key := c.key(userID, idempotencyKey)
	reserved, err := c.Client.SetNX(ctx, key, pendingMarker, c.TTL).Result()
	if err != nil {
		return 0, false, err
	}
	if reserved {
		return 0, true, nil
	}

	value, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, domain.ErrRequestInFlight
	}
	if err != nil {
		return 0, false, err
	}
	if value == pendingMarker {
		return 0, false, nil
	}

	orderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt idempotency entry %q: %w", key, err)
	}
	return orderID, false, nil
}

func (c *IdempotencyCache) Complete(ctx context.Context, userID int64, idempotencyKey string, orderID int64) error {
	return c.Client.Set(ctx, c.key(userID, idempotencyKey), strconv.FormatInt(orderID, 10), c.TTL).Err()
}

func (c *IdempotencyCache) Release(ctx context.Context, userID int64, idempotencyKey string) error {
	return c.Client.Del(ctx, c.key(userID, idempotencyKey)).Err()
}
