package service

import (
	"context"
	"time"

	"foodhub/report-svc/internal/domain"
)

const defaultTopLimit = 10

type AnalyticsService struct {
	stats StatsReader
	now   func() time.Time
}

func NewAnalyticsService(stats StatsReader) *AnalyticsService {
	return &AnalyticsService{stats: stats, now: time.Now}
}

func (s *AnalyticsService) today() string {
	return s.now().UTC().Format(dayLayout)
}

func (s *AnalyticsService) Today(ctx context.Context, limit int64) ([]domain.DailyStats, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.stats.TopRestaurants(ctx, s.today(), limit)
}

func (s *AnalyticsService) RestaurantToday(ctx context.Context, restaurantID int64) (domain.DailyStats, error) {
	return s.stats.DailyStats(ctx, s.today(), restaurantID)
}
