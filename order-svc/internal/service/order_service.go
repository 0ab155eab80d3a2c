package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodhub/order-svc/internal/billing"
	"foodhub/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	UserID         int64
	RestaurantID   int64
	Items          []domain.CartLine
	IdempotencyKey string
}

type PlacedOrder struct {
	OrderID  int64
	Status   domain.OrderStatus
	Totals   domain.Totals
	Replayed bool
}

type OrderService struct {
	orders      OrderRepository
	identity    IdentityLookup
	prices      *PriceOracle
	calculator  *billing.Calculator
	publisher   EventPublisher
	idempotency IdempotencyStore
	qr          QRGenerator
}

// NewOrderService wires the order engine. publisher, idempotency and qr may
// be nil.
func NewOrderService(
	orders OrderRepository,
	identity IdentityLookup,
	prices *PriceOracle,
	calculator *billing.Calculator,
	publisher EventPublisher,
	idempotency IdempotencyStore,
	qr QRGenerator,
) *OrderService {
	return &OrderService{
		orders:      orders,
		identity:    identity,
		prices:      prices,
		calculator:  calculator,
		publisher:   publisher,
		idempotency: idempotency,
		qr:          qr,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlacedOrder, error) {
	if req.IdempotencyKey != "" && s.idempotency != nil {
		orderID, reserved, err := s.idempotency.Reserve(ctx, req.UserID, req.IdempotencyKey)
		switch {
		case err != nil:
			return nil, fmt.Errorf("reserve idempotency key: %w", err)
		case orderID > 0:
			return s.replay(ctx, orderID)
		case !reserved:
			return nil, domain.ErrRequestInFlight
		}
	}

	placed, err := s.placeOrder(ctx, req)
	if req.IdempotencyKey != "" && s.idempotency != nil {
		ctx := context.WithoutCancel(ctx)
		if err != nil {
			if releaseErr := s.idempotency.Release(ctx, req.UserID, req.IdempotencyKey); releaseErr != nil {
				log.Printf("release idempotency key %q: %v", req.IdempotencyKey, releaseErr)
			}
		} else if completeErr := s.idempotency.Complete(ctx, req.UserID, req.IdempotencyKey, placed.OrderID); completeErr != nil {
			log.Printf("complete idempotency key %q for order %d: %v", req.IdempotencyKey, placed.OrderID, completeErr)
		}
	}
	return placed, err
}

func (s *OrderService) placeOrder(ctx context.Context, req PlaceOrderRequest) (*PlacedOrder, error) {
	if req.UserID <= 0 {
		return nil, domain.ErrInvalidUser
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.Quantity > domain.MaxLineQuantity {
			return nil, domain.ErrInvalidQuantity
		}
	}

	role, err := s.identity.UserRole(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUser) {
			return nil, err
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if role != domain.RoleCustomer {
		return nil, domain.ErrInvalidUser
	}

	ids := make([]int64, 0, len(req.Items))
	seen := make(map[int64]bool, len(req.Items))
	lines := make([]billing.Line, 0, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			ids = append(ids, item.MenuItemID)
		}
		lines = append(lines, billing.Line{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	prices, err := s.prices.Prices(ctx, req.RestaurantID, ids)
	if err != nil {
		return nil, err
	}

	totals, err := s.calculator.Compute(lines, prices)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		Subtotal:     totals.Subtotal,
		PlatformFee:  totals.PlatformFee,
		Status:       domain.StatusPending,
		Lines:        make([]domain.OrderLine, 0, len(lines)),
	}
	if totals.Commission != nil {
		order.Commission = decimal.NewNullDecimal(*totals.Commission)
	}
	if totals.CGST != nil && totals.SGST != nil {
		order.CGST = decimal.NewNullDecimal(*totals.CGST)
		order.SGST = decimal.NewNullDecimal(*totals.SGST)
	}
	for _, line := range lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			MenuItemID:     line.MenuItemID,
			Quantity:       line.Quantity,
			UnitPriceAtBuy: prices[line.MenuItemID],
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Subtotal:     order.Subtotal.StringFixed(2),
		PlatformFee:  order.PlatformFee.StringFixed(2),
		Commission:   commissionString(order.Commission),
		Status:       order.Status,
		Timestamp:    order.CreatedAt,
	})

	return &PlacedOrder{OrderID: order.ID, Status: order.Status, Totals: totals}, nil
}

func (s *OrderService) replay(ctx context.Context, orderID int64) (*PlacedOrder, error) {
	bill, err := s.GetBill(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("replay order %d: %w", orderID, err)
	}
	return &PlacedOrder{OrderID: bill.OrderID, Status: bill.Status, Totals: bill.Totals, Replayed: true}, nil
}

// GetBill rebuilds the bill from the persisted header and the snapshot price
// of each line. Live menu prices are never consulted.
func (s *OrderService) GetBill(ctx context.Context, orderID int64) (*domain.Bill, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Keyed by position so two lines of one item keep their own snapshot.
	lines := make([]billing.Line, len(order.Lines))
	prices := make(map[int64]decimal.Decimal, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = billing.Line{MenuItemID: int64(i), Quantity: line.Quantity}
		prices[int64(i)] = line.UnitPriceAtBuy
	}

	recomputed, err := s.calculator.Compute(lines, prices)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w: %w", orderID, domain.ErrBillMismatch, err)
	}
	if !recomputed.Subtotal.Equal(order.Subtotal) || !recomputed.PlatformFee.Equal(order.PlatformFee) {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrBillMismatch)
	}

	var commission *decimal.Decimal
	if order.Commission.Valid {
		if recomputed.Commission != nil && !recomputed.Commission.Equal(order.Commission.Decimal) {
			return nil, fmt.Errorf("order %d commission: %w", orderID, domain.ErrBillMismatch)
		}
		commission = &order.Commission.Decimal
	}

	// Tax follows what was charged at placement, not the current stage switch.
	var tax *billing.Tax
	if order.CGST.Valid && order.SGST.Valid {
		if recomputed.CGST != nil && recomputed.SGST != nil &&
			(!recomputed.CGST.Equal(order.CGST.Decimal) || !recomputed.SGST.Equal(order.SGST.Decimal)) {
			return nil, fmt.Errorf("order %d tax: %w", orderID, domain.ErrBillMismatch)
		}
		tax = &billing.Tax{CGST: order.CGST.Decimal, SGST: order.SGST.Decimal}
	}

	return &domain.Bill{
		OrderID:        order.ID,
		RestaurantName: order.RestaurantName,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt,
		Lines:          order.Lines,
		Totals:         billing.FromTotals(order.Subtotal, order.PlatformFee, commission, tax),
	}, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.StatusChange, error) {
	target, err := domain.ParseTargetStatus(status)
	if err != nil {
		return nil, err
	}

	change, err := s.orders.UpdateOrderStatus(ctx, orderID, target)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderStatusChanged,
		OrderID:      change.OrderID,
		RestaurantID: change.RestaurantID,
		Status:       change.To,
		Timestamp:    change.ChangedAt,
	})
	return change, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID int64) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}

// publish never fails the caller; the order is already committed.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("publish %s for order %d: %v", event.Type, event.OrderID, err)
	}
}

func commissionString(commission decimal.NullDecimal) string {
	if !commission.Valid {
		return ""
	}
	return commission.Decimal.StringFixed(2)
}
