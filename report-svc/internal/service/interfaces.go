package service

import (
	"context"

	"foodhub/report-svc/internal/domain"
	"foodhub/report-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

// MessageReader is satisfied by *kafka.Reader with a consumer group.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventKey string) (bool, error)
	Forget(ctx context.Context, eventKey string) error
	RecordPlaced(ctx context.Context, day string, restaurantID, revenueCents int64) error
	RecordDelivered(ctx context.Context, day string, restaurantID int64) error
}

type StatsReader interface {
	DailyStats(ctx context.Context, day string, restaurantID int64) (domain.DailyStats, error)
	TopRestaurants(ctx context.Context, day string, limit int64) ([]domain.DailyStats, error)
}

type AnalyticsInterface interface {
	Today(ctx context.Context, limit int64) ([]domain.DailyStats, error)
	RestaurantToday(ctx context.Context, restaurantID int64) (domain.DailyStats, error)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ StatsReader        = (*storage.Store)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
