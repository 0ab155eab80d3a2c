package service

import (
	"context"

	"foodhub/order-svc/internal/domain"
)

// ReportService serves the read-only order views for customers, restaurants
// and the admin.
type ReportService struct {
	reports ReportRepository
	menu    MenuLookup
}

func NewReportService(reports ReportRepository, menu MenuLookup) *ReportService {
	return &ReportService{reports: reports, menu: menu}
}

func (s *ReportService) CustomerOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	return s.reports.ListCustomerOrders(ctx, userID)
}

func (s *ReportService) RestaurantOrders(ctx context.Context, restaurantID int64) ([]domain.OrderSummary, error) {
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.reports.ListRestaurantOrders(ctx, restaurantID)
}

func (s *ReportService) AllOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return s.reports.ListAllOrders(ctx)
}

func (s *ReportService) RestaurantReport(ctx context.Context, restaurantID int64) (*domain.RestaurantReport, error) {
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.reports.RestaurantReport(ctx, restaurantID)
}

func (s *ReportService) SystemReport(ctx context.Context) ([]domain.SystemReportRow, error) {
	return s.reports.SystemReport(ctx)
}

func (s *ReportService) requireRestaurant(ctx context.Context, restaurantID int64) error {
	exists, err := s.menu.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUnknownRestaurant
	}
	return nil
}
