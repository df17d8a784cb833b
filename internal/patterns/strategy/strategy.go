// Package strategy demonstrates interchangeable pricing strategies and
// the threshold rule that selects one per order.
package strategy

import (
	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

// PricingStrategy prices one order.
type PricingStrategy interface {
	Name() string
	Price(order domain.Order) decimal.Decimal
}

// MarketPricing executes at the quoted price.
type MarketPricing struct{}

func (MarketPricing) Name() string { return "market" }

func (MarketPricing) Price(order domain.Order) decimal.Decimal {
	return order.Price
}

// VWAPPricing nudges toward a volume-weighted average: a small discount
// for sells, premium for buys.
type VWAPPricing struct{}

func (VWAPPricing) Name() string { return "vwap" }

func (VWAPPricing) Price(order domain.Order) decimal.Decimal {
	adj := decimal.NewFromFloat(0.001)
	if order.Side == domain.SideSell {
		return order.Price.Mul(decimal.NewFromInt(1).Sub(adj))
	}
	return order.Price.Mul(decimal.NewFromInt(1).Add(adj))
}

// TWAPPricing averages the quote over time slices; the fake smooths by a
// fixed half-spread.
type TWAPPricing struct{}

func (TWAPPricing) Name() string { return "twap" }

func (TWAPPricing) Price(order domain.Order) decimal.Decimal {
	halfSpread := decimal.NewFromFloat(0.0005)
	return order.Price.Mul(decimal.NewFromInt(1).Sub(halfSpread))
}

// RiskAdjustedPricing widens the price with order size to cover impact.
type RiskAdjustedPricing struct{}

func (RiskAdjustedPricing) Name() string { return "risk-adjusted" }

func (RiskAdjustedPricing) Price(order domain.Order) decimal.Decimal {
	// 0.5bp of impact per 100 units of quantity.
	impact := order.Quantity.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromFloat(0.00005))
	if order.Side == domain.SideSell {
		return order.Price.Mul(decimal.NewFromInt(1).Sub(impact))
	}
	return order.Price.Mul(decimal.NewFromInt(1).Add(impact))
}

// selection thresholds on order notional
var (
	vwapThreshold = decimal.NewFromInt(10_000)
	twapThreshold = decimal.NewFromInt(100_000)
	riskThreshold = decimal.NewFromInt(500_000)
)

// All returns the registered strategies in selection order.
func All() []PricingStrategy {
	return []PricingStrategy{MarketPricing{}, VWAPPricing{}, TWAPPricing{}, RiskAdjustedPricing{}}
}

// Select picks the strategy for an order: notional above 500,000 gets
// risk-adjusted pricing, then twap, then vwap, else market.
func Select(order domain.Order) PricingStrategy {
	notional := order.Notional()
	switch {
	case notional.GreaterThan(riskThreshold):
		return RiskAdjustedPricing{}
	case notional.GreaterThan(twapThreshold):
		return TWAPPricing{}
	case notional.GreaterThan(vwapThreshold):
		return VWAPPricing{}
	default:
		return MarketPricing{}
	}
}
