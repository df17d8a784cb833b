package strategy

import (
	"testing"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

func buyOrder(qty, price int64) domain.Order {
	return domain.Order{
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(qty),
		Price:    decimal.NewFromInt(price),
	}
}

func TestSelectThresholds(t *testing.T) {
	tests := []struct {
		name     string
		qty      int64
		price    int64
		expected string
	}{
		{"tiny order", 1, 500, "market"},
		{"at vwap boundary stays market", 1, 10_000, "market"},
		{"just above vwap boundary", 1, 10_001, "vwap"},
		{"mid size", 1, 50_000, "vwap"},
		{"large", 4, 64_000, "twap"},
		{"at risk boundary stays twap", 5, 100_000, "twap"},
		{"above 500k goes risk-adjusted", 10, 64_000, "risk-adjusted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(buyOrder(tt.qty, tt.price))
			if got.Name() != tt.expected {
				t.Errorf("Select(%d x %d) = %s, want %s",
					tt.qty, tt.price, got.Name(), tt.expected)
			}
		})
	}
}

func TestAllReturnsFourStrategies(t *testing.T) {
	strategies := All()
	if len(strategies) != 4 {
		t.Fatalf("All() = %d strategies, want 4", len(strategies))
	}

	seen := map[string]bool{}
	for _, s := range strategies {
		seen[s.Name()] = true
	}
	for _, want := range []string{"market", "vwap", "twap", "risk-adjusted"} {
		if !seen[want] {
			t.Errorf("strategy %s missing from All()", want)
		}
	}
}

func TestPricingDirections(t *testing.T) {
	buy := buyOrder(10, 64_000)
	sell := buy
	sell.Side = domain.SideSell

	if got := (MarketPricing{}).Price(buy); !got.Equal(buy.Price) {
		t.Errorf("market price = %s, want quote %s", got, buy.Price)
	}

	if got := (VWAPPricing{}).Price(buy); !got.GreaterThan(buy.Price) {
		t.Errorf("vwap buy price %s should exceed quote", got)
	}
	if got := (VWAPPricing{}).Price(sell); !got.LessThan(sell.Price) {
		t.Errorf("vwap sell price %s should undercut quote", got)
	}

	if got := (RiskAdjustedPricing{}).Price(buy); !got.GreaterThan(buy.Price) {
		t.Errorf("risk-adjusted buy price %s should exceed quote", got)
	}

	// Impact grows with quantity.
	small := (RiskAdjustedPricing{}).Price(buyOrder(10, 64_000))
	large := (RiskAdjustedPricing{}).Price(buyOrder(1_000, 64_000))
	if !large.GreaterThan(small) {
		t.Errorf("impact should grow with size: %s vs %s", large, small)
	}
}
