// Package factorymethod demonstrates a validator factory that picks an
// implementation from the order's notional value.
package factorymethod

import (
	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

// OrderValidator checks one order against a rule set.
type OrderValidator interface {
	Name() string
	Validate(order domain.Order) domain.ValidationResult
}

var (
	strictThreshold        = decimal.NewFromInt(10_000)
	institutionalThreshold = decimal.NewFromInt(1_000_000)
)

// NewValidator is the factory method: it selects the validator tier from
// the order's notional value.
func NewValidator(order domain.Order) OrderValidator {
	notional := order.Notional()
	switch {
	case notional.GreaterThanOrEqual(institutionalThreshold):
		return &InstitutionalValidator{}
	case notional.GreaterThanOrEqual(strictThreshold):
		return &StrictValidator{}
	default:
		return &BasicValidator{}
	}
}

// BasicValidator applies the minimum shared checks.
type BasicValidator struct{}

func (v *BasicValidator) Name() string { return "basic" }

func (v *BasicValidator) Validate(order domain.Order) domain.ValidationResult {
	result := domain.OK()
	if order.Symbol == "" {
		result.Fail("symbol is required")
	}
	if order.Quantity.LessThanOrEqual(decimal.Zero) {
		result.Fail("quantity must be positive")
	}
	if order.Price.LessThanOrEqual(decimal.Zero) {
		result.Fail("price must be positive")
	}
	return result
}

// StrictValidator adds account checks for retail-sized orders.
type StrictValidator struct{}

func (v *StrictValidator) Name() string { return "strict" }

func (v *StrictValidator) Validate(order domain.Order) domain.ValidationResult {
	result := (&BasicValidator{}).Validate(order)
	if order.AccountID == "" {
		result.Fail("account is required above the strict threshold")
	}
	if order.Side != domain.SideBuy && order.Side != domain.SideSell {
		result.Fail("side must be BUY or SELL")
	}
	return result
}

// InstitutionalValidator adds large-order safeguards.
type InstitutionalValidator struct{}

func (v *InstitutionalValidator) Name() string { return "institutional" }

func (v *InstitutionalValidator) Validate(order domain.Order) domain.ValidationResult {
	result := (&StrictValidator{}).Validate(order)
	if order.Quantity.GreaterThan(decimal.NewFromInt(1_000_000)) {
		result.Fail("quantity exceeds institutional per-order limit")
	}
	return result
}
