package service

import (
	"context"
	"fmt"

	"foodhub/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// PriceOracle resolves authoritative unit prices from the menu. Prices sent
// by clients never reach it.
type PriceOracle struct {
	menu MenuLookup
}

func NewPriceOracle(menu MenuLookup) *PriceOracle {
	return &PriceOracle{menu: menu}
}

// Prices returns a price for every id, or an error naming the first id that
// is unknown or sold by another restaurant.
func (o *PriceOracle) Prices(ctx context.Context, restaurantID int64, itemIDs []int64) (map[int64]decimal.Decimal, error) {
	exists, err := o.menu.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant: %w", err)
	}
	if !exists {
		return nil, domain.ErrUnknownRestaurant
	}

	items, err := o.menu.MenuItemsByID(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("lookup menu items: %w", err)
	}

	byID := make(map[int64]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	prices := make(map[int64]decimal.Decimal, len(itemIDs))
	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok || item.RestaurantID != restaurantID {
			return nil, &domain.InvalidItemError{MenuItemID: id, RestaurantID: restaurantID}
		}
		prices[id] = item.UnitPrice
	}
	return prices, nil
}
