package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"

	StatusDelivered = "Delivered"
)

// OrderEvent mirrors the message order-svc publishes on the orders topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int64     `json:"order_id"`
	UserID       int64     `json:"user_id,omitempty"`
	RestaurantID int64     `json:"restaurant_id"`
	Subtotal     string    `json:"subtotal,omitempty"`
	PlatformFee  string    `json:"platform_fee,omitempty"`
	Commission   string    `json:"commission,omitempty"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type DailyStats struct {
	RestaurantID int64  `json:"restaurant_id"`
	Date         string `json:"date"`
	Orders       int64  `json:"orders"`
	Revenue      string `json:"revenue"`
	Delivered    int64  `json:"delivered"`
}
