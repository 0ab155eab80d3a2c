package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodhub/report-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Store keeps per-day counters in Redis. Revenue is held in integer cents
// so repeated increments never drift.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func dailyKey(day string, restaurantID int64) string {
	return fmt.Sprintf("analytics:daily:%s:%d", day, restaurantID)
}

func revenueRankKey(day string) string {
	return "analytics:revenue:" + day
}

func seenKey(eventKey string) string {
	return "analytics:seen:" + eventKey
}

// MarkProcessed returns false when eventKey was already recorded.
func (s *Store) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	return s.rdb.SetNX(ctx, seenKey(eventKey), "1", s.ttl).Result()
}

func (s *Store) Forget(ctx context.Context, eventKey string) error {
	return s.rdb.Del(ctx, seenKey(eventKey)).Err()
}

func (s *Store) RecordPlaced(ctx context.Context, day string, restaurantID, revenueCents int64) error {
	key := dailyKey(day, restaurantID)
	rankKey := revenueRankKey(day)

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, "orders", 1)
	pipe.HIncrBy(ctx, key, "revenue_cents", revenueCents)
	pipe.Expire(ctx, key, s.ttl)
	pipe.ZIncrBy(ctx, rankKey, float64(revenueCents), strconv.FormatInt(restaurantID, 10))
	pipe.Expire(ctx, rankKey, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) RecordDelivered(ctx context.Context, day string, restaurantID int64) error {
	key := dailyKey(day, restaurantID)

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, "delivered", 1)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) DailyStats(ctx context.Context, day string, restaurantID int64) (domain.DailyStats, error) {
	values, err := s.rdb.HGetAll(ctx, dailyKey(day, restaurantID)).Result()
	if err != nil {
		return domain.DailyStats{}, err
	}

	orders, _ := strconv.ParseInt(values["orders"], 10, 64)
	cents, _ := strconv.ParseInt(values["revenue_cents"], 10, 64)
	delivered, _ := strconv.ParseInt(values["delivered"], 10, 64)

	return domain.DailyStats{
		RestaurantID: restaurantID,
		Date:         day,
		Orders:       orders,
		Revenue:      decimal.New(cents, -2).StringFixed(2),
		Delivered:    delivered,
	}, nil
}

// TopRestaurants lists the restaurants with the highest revenue on day.
func (s *Store) TopRestaurants(ctx context.Context, day string, limit int64) ([]domain.DailyStats, error) {
	members, err := s.rdb.ZRevRange(ctx, revenueRankKey(day), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.DailyStats, 0, len(members))
	for _, member := range members {
		restaurantID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		stats, err := s.DailyStats(ctx, day, restaurantID)
		if err != nil {
			return nil, err
		}
		top = append(top, stats)
	}
	return top, nil
}
