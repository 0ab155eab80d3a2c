package storage

import (
	"context"
	"testing"
	"time"

	"foodhub/order-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIdempotencyCache(t *testing.T) (*IdempotencyCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewIdempotencyCache(client, time.Hour), mr
}

func TestIdempotencyCache_ReserveThenReplay(t *testing.T) {
	cache, mr := setupIdempotencyCache(t)
	ctx := context.Background()

	orderID, reserved, err := cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Zero(t, orderID)

	orderID, reserved, err = cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Zero(t, orderID, "pending key has no order yet")

	require.NoError(t, cache.Complete(ctx, 5, "abc", 42))
	orderID, reserved, err = cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, int64(42), orderID)

	assert.True(t, mr.Exists("order:idem:5:abc"))
	assert.Equal(t, time.Hour, mr.TTL("order:idem:5:abc"))
}

func TestIdempotencyCache_KeysAreScopedPerUser(t *testing.T) {
	cache, _ := setupIdempotencyCache(t)
	ctx := context.Background()

	_, reserved, err := cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	require.True(t, reserved)

	_, reserved, err = cache.Reserve(ctx, 6, "abc")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyCache_Release(t *testing.T) {
	cache, mr := setupIdempotencyCache(t)
	ctx := context.Background()

	_, _, err := cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	require.NoError(t, cache.Release(ctx, 5, "abc"))
	assert.False(t, mr.Exists("order:idem:5:abc"))

	_, reserved, err := cache.Reserve(ctx, 5, "abc")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyCache_CorruptEntry(t *testing.T) {
	cache, mr := setupIdempotencyCache(t)
	require.NoError(t, mr.Set("order:idem:5:abc", "not-a-number"))

	_, _, err := cache.Reserve(context.Background(), 5, "abc")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRequestInFlight)
}

func TestIdempotencyCache_RedisDown(t *testing.T) {
	cache, mr := setupIdempotencyCache(t)
	mr.Close()

	_, _, err := cache.Reserve(context.Background(), 5, "abc")

	assert.Error(t, err)
}
