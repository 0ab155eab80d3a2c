package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAccepted  OrderStatus = "Accepted"
	StatusPreparing OrderStatus = "Preparing"
	StatusDelivered OrderStatus = "Delivered"
)

// ParseTargetStatus accepts only the statuses an operator may write.
// Pending is the creation state and can never be requested.
func ParseTargetStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case StatusAccepted, StatusPreparing, StatusDelivered:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered
}

func (s OrderStatus) String() string {
	return string(s)
}

const RoleCustomer = "customer"

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 1000

type Restaurant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Description  string          `json:"description"`
}

// CartLine is what the client declares. ClaimedPrice is decoded so that
// clients sending it are not rejected, and is never read when pricing.
type CartLine struct {
	MenuItemID   int64            `json:"menu_item_id"`
	Quantity     int              `json:"quantity"`
	ClaimedPrice *decimal.Decimal `json:"price,omitempty"`
}

type Order struct {
	ID             int64
	UserID         int64
	RestaurantID   int64
	RestaurantName string
	Subtotal       decimal.Decimal
	PlatformFee    decimal.Decimal
	Commission     decimal.NullDecimal
	CGST           decimal.NullDecimal
	SGST           decimal.NullDecimal
	Status         OrderStatus
	CreatedAt      time.Time
	Lines          []OrderLine
}

type OrderLine struct {
	OrderID        int64
	MenuItemID     int64
	Name           string
	Quantity       int
	UnitPriceAtBuy decimal.Decimal
}

func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPriceAtBuy.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals holds every money figure of an order. Optional stages are nil
// when switched off.
type Totals struct {
	Subtotal    decimal.Decimal
	PlatformFee decimal.Decimal
	Commission  *decimal.Decimal
	NetEarnings *decimal.Decimal
	TaxableBase *decimal.Decimal
	CGST        *decimal.Decimal
	SGST        *decimal.Decimal
	GrandTotal  decimal.Decimal
}

type Bill struct {
	OrderID        int64
	RestaurantName string
	Status         OrderStatus
	CreatedAt      time.Time
	Lines          []OrderLine
	Totals
}

type StatusChange struct {
	OrderID      int64
	RestaurantID int64
	From         OrderStatus
	To           OrderStatus
	ChangedAt    time.Time
}

type OrderSummary struct {
	ID             int64
	Customer       string
	RestaurantName string
	Subtotal       decimal.Decimal
	Status         OrderStatus
	CreatedAt      time.Time
	Items          []string
}

type RestaurantReport struct {
	RestaurantID    int64
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
}

func (r RestaurantReport) NetEarnings() decimal.Decimal {
	return r.TotalRevenue.Sub(r.TotalCommission)
}

type SystemReportRow struct {
	RestaurantID   int64
	RestaurantName string
	TotalOrders    int
	TotalRevenue   decimal.Decimal
}
