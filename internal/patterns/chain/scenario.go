package chain

import (
	"context"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "chain" }

func chainOrder(symbol string, qty, price int64) domain.Order {
	return domain.Order{
		ID:       idgen.NewOrderID(),
		Symbol:   symbol,
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(qty),
		Price:    decimal.NewFromInt(price),
		Status:   domain.StatusPending,
	}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	c := NewValidationChain()

	clean := c.Validate(chainOrder("BTCUSD", 1, 64_000))
	tooBig := c.Validate(chainOrder("BTCUSD", 1_000, 64_000))
	restricted := c.Validate(chainOrder("SANCTUSD", 1, 100))

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Linear basic → risk → compliance validation chain",
		Result: map[string]any{
			"clean":      clean,
			"too_big":    tooBig,
			"restricted": restricted,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}
	c := NewValidationChain()

	ok := c.Validate(chainOrder("BTCUSD", 1, 64_000))
	result.AddCheck("clean order passes all links", ok.Valid, "errors: %v", ok.Errors)

	bad := c.Validate(chainOrder("", 0, 0))
	result.AddCheck("basic link collects field errors", !bad.Valid && len(bad.Errors) == 3,
		"errors: %v", bad.Errors)

	big := c.Validate(chainOrder("BTCUSD", 1_000, 64_000))
	result.AddCheck("risk link rejects oversized notional", !big.Valid,
		"errors: %v", big.Errors)

	restricted := c.Validate(chainOrder("SANCTUSD", 1, 100))
	result.AddCheck("compliance link blocks restricted symbol", !restricted.Valid,
		"errors: %v", restricted.Errors)

	// Failures accumulate across links rather than short-circuiting.
	multi := c.Validate(chainOrder("SANCTUSD", 1_000, 100_000))
	result.AddCheck("failures accumulate across links", len(multi.Errors) >= 2,
		"errors: %v", multi.Errors)

	result.Finish()
	return result
}
