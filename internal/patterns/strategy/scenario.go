package strategy

import (
	"context"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "strategy" }

func orderWithNotional(qty, price int64) domain.Order {
	return domain.Order{
		ID:       idgen.NewOrderID(),
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(qty),
		Price:    decimal.NewFromInt(price),
		Status:   domain.StatusPending,
	}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	// Notional 640,000, above the risk-adjusted threshold.
	order := orderWithNotional(10, 64_000)

	var priced []map[string]any
	for _, strat := range All() {
		priced = append(priced, map[string]any{
			"strategy": strat.Name(),
			"price":    strat.Price(order),
		})
	}

	selected := Select(order)
	priced = append(priced, map[string]any{
		"strategy": "selection",
		"chosen":   selected.Name(),
		"price":    selected.Price(order),
	})

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Four pricing strategies plus the threshold-based selection rule",
		Result:      priced,
		Metadata: map[string]any{
			"notional":       order.Notional(),
			"risk_threshold": riskThreshold,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	small := Select(orderWithNotional(1, 500))
	result.AddCheck("small orders use market pricing", small.Name() == "market",
		"got %s", small.Name())

	mid := Select(orderWithNotional(1, 50_000))
	result.AddCheck("mid orders use vwap", mid.Name() == "vwap", "got %s", mid.Name())

	larger := Select(orderWithNotional(4, 64_000))
	result.AddCheck("larger orders use twap", larger.Name() == "twap", "got %s", larger.Name())

	big := Select(orderWithNotional(10, 64_000))
	result.AddCheck("notional above 500k uses risk-adjusted",
		big.Name() == "risk-adjusted", "got %s", big.Name())

	order := orderWithNotional(10, 64_000)
	riskPrice := (RiskAdjustedPricing{}).Price(order)
	result.AddCheck("risk-adjusted widens buy price",
		riskPrice.GreaterThan(order.Price),
		"risk price %s vs quote %s", riskPrice, order.Price)

	result.Finish()
	return result
}
