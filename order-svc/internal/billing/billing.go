// Package billing turns priced order lines into the money figures of an
// order. Every derived figure is rounded half-up to two decimals on its own
// before it is combined with any other figure.
package billing

import (
	"fmt"

	"foodhub/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type Stages struct {
	Commission bool
	Tax        bool
}

type Config struct {
	PlatformFeeRate decimal.Decimal
	CommissionRate  decimal.Decimal
	CGSTRate        decimal.Decimal
	SGSTRate        decimal.Decimal
	Stages          Stages
}

func DefaultConfig() Config {
	return Config{
		PlatformFeeRate: decimal.RequireFromString("0.05"),
		CommissionRate:  decimal.RequireFromString("0.10"),
		CGSTRate:        decimal.RequireFromString("0.09"),
		SGSTRate:        decimal.RequireFromString("0.09"),
		Stages:          Stages{Commission: true, Tax: true},
	}
}

// MaxAmount is the largest money figure an order column can hold
// (NUMERIC(12,2)).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Tax is the CGST/SGST pair charged on one order.
type Tax struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
}

type Line struct {
	MenuItemID int64
	Quantity   int
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

func (c *Calculator) Config() Config {
	return c.cfg
}

// Round2 rounds half-up for the non-negative amounts billing deals with.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Compute prices lines with the given authoritative prices. It fails only
// on malformed input.
func (c *Calculator) Compute(lines []Line, prices map[int64]decimal.Decimal) (domain.Totals, error) {
	if len(lines) == 0 {
		return domain.Totals{}, &domain.CalculationError{Err: domain.ErrEmptyCart}
	}

	sum := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 || line.Quantity > domain.MaxLineQuantity {
			return domain.Totals{}, &domain.CalculationError{Err: domain.ErrInvalidQuantity}
		}
		price, ok := prices[line.MenuItemID]
		if !ok {
			return domain.Totals{}, &domain.CalculationError{Err: fmt.Errorf("no price for menu item %d", line.MenuItemID)}
		}
		if price.IsNegative() {
			return domain.Totals{}, &domain.CalculationError{Err: fmt.Errorf("negative price for menu item %d", line.MenuItemID)}
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	subtotal := Round2(sum)
	fee := Round2(subtotal.Mul(c.cfg.PlatformFeeRate))
	base := Round2(subtotal.Add(fee))
	if base.GreaterThan(MaxAmount) {
		return domain.Totals{}, &domain.CalculationError{Err: domain.ErrAmountTooLarge}
	}

	var commission *decimal.Decimal
	if c.cfg.Stages.Commission {
		value := Round2(subtotal.Mul(c.cfg.CommissionRate))
		commission = &value
	}

	var tax *Tax
	if c.cfg.Stages.Tax {
		tax = &Tax{
			CGST: Round2(base.Mul(c.cfg.CGSTRate)),
			SGST: Round2(base.Mul(c.cfg.SGSTRate)),
		}
	}

	return FromTotals(subtotal, fee, commission, tax), nil
}

// FromTotals derives the customer-facing and payout projections from the
// figures stored on an order header. A nil commission or tax means the
// stage was off when the order was placed.
func FromTotals(subtotal, fee decimal.Decimal, commission *decimal.Decimal, tax *Tax) domain.Totals {
	totals := domain.Totals{
		Subtotal:    subtotal,
		PlatformFee: fee,
		GrandTotal:  Round2(subtotal.Add(fee)),
	}

	if commission != nil {
		value := *commission
		net := subtotal.Sub(value)
		totals.Commission = &value
		totals.NetEarnings = &net
	}

	if tax != nil {
		base := Round2(subtotal.Add(fee))
		cgst, sgst := tax.CGST, tax.SGST
		totals.TaxableBase = &base
		totals.CGST = &cgst
		totals.SGST = &sgst
		totals.GrandTotal = Round2(base.Add(cgst).Add(sgst))
	}

	return totals
}
