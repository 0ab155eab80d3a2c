package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the message published on the orders topic. Money travels
// as fixed two-decimal strings.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int64       `json:"order_id"`
	UserID       int64       `json:"user_id,omitempty"`
	RestaurantID int64       `json:"restaurant_id"`
	Subtotal     string      `json:"subtotal,omitempty"`
	PlatformFee  string      `json:"platform_fee,omitempty"`
	Commission   string      `json:"commission,omitempty"`
	Status       OrderStatus `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
}
