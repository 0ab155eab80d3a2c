package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 1000")
	ErrAmountTooLarge    = errors.New("order total exceeds the supported amount")
	ErrInvalidStatus     = errors.New("status must be one of Accepted, Preparing, Delivered")
	ErrInvalidUser       = errors.New("invalid customer user_id")
	ErrUnknownRestaurant = errors.New("unknown restaurant")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTerminalState     = errors.New("order already delivered")
	ErrPersistence       = errors.New("persistence failure")
	ErrBillMismatch      = errors.New("stored totals do not match order lines")
	ErrRequestInFlight   = errors.New("a request with this idempotency key is still in progress")
)

// InvalidItemError names a menu item that is unknown or belongs to a
// different restaurant than the one being ordered from.
type InvalidItemError struct {
	MenuItemID   int64
	RestaurantID int64
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("menu item %d does not belong to restaurant %d", e.MenuItemID, e.RestaurantID)
}

// CalculationError reports malformed billing input.
type CalculationError struct {
	Err error
}

func (e *CalculationError) Error() string {
	return "billing: " + e.Err.Error()
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err is caused by the request rather than
// by infrastructure.
func IsClientError(err error) bool {
	var itemErr *InvalidItemError
	var calcErr *CalculationError
	switch {
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidUser),
		errors.Is(err, ErrUnknownRestaurant),
		errors.As(err, &itemErr),
		errors.As(err, &calcErr):
		return true
	}
	return false
}
