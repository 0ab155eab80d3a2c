package service

import (
	"context"

	"foodhub/order-svc/internal/domain"
)

type MenuLookup interface {
	RestaurantExists(ctx context.Context, restaurantID int64) (bool, error)
	MenuItemsByID(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
}

type IdentityLookup interface {
	UserRole(ctx context.Context, userID int64) (string, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.StatusChange, error)
}

type ReportRepository interface {
	ListCustomerOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error)
	ListRestaurantOrders(ctx context.Context, restaurantID int64) ([]domain.OrderSummary, error)
	ListAllOrders(ctx context.Context) ([]domain.OrderSummary, error)
	RestaurantReport(ctx context.Context, restaurantID int64) (*domain.RestaurantReport, error)
	SystemReport(ctx context.Context) ([]domain.SystemReportRow, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type IdempotencyStore interface {
	Reserve(ctx context.Context, userID int64, key string) (int64, bool, error)
	Complete(ctx context.Context, userID int64, key string, orderID int64) error
	Release(ctx context.Context, userID int64, key string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlacedOrder, error)
	GetBill(ctx context.Context, orderID int64) (*domain.Bill, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.StatusChange, error)
	QRCode(ctx context.Context, orderID int64) ([]byte, error)
}

type ReportServiceInterface interface {
	CustomerOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error)
	RestaurantOrders(ctx context.Context, restaurantID int64) ([]domain.OrderSummary, error)
	AllOrders(ctx context.Context) ([]domain.OrderSummary, error)
	RestaurantReport(ctx context.Context, restaurantID int64) (*domain.RestaurantReport, error)
	SystemReport(ctx context.Context) ([]domain.SystemReportRow, error)
}

var (
	_ OrderServiceInterface  = (*OrderService)(nil)
	_ ReportServiceInterface = (*ReportService)(nil)
)
