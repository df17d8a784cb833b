package builder

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/patterns"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "builder" }

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	order, err := NewOrderBuilder().
		ForAccount("acc-demo").
		WithSymbol("ethusd").
		Sell().
		WithQuantity(decimal.NewFromInt(3)).
		WithPrice(decimal.NewFromInt(3400)).
		Build()

	_, incompleteErr := NewOrderBuilder().WithSymbol("BTCUSD").Build()

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Fluent order construction with required-field validation at Build()",
		Result: map[string]any{
			"order":            order,
			"build_error":      errString(err),
			"incomplete_error": errString(incompleteErr),
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	order, err := NewOrderBuilder().
		ForAccount("acc-1").
		WithSymbol("btcusd").
		Buy().
		WithQuantity(decimal.NewFromInt(2)).
		WithPrice(decimal.NewFromInt(64_000)).
		Build()
	result.AddCheck("complete builder succeeds", err == nil, "err: %v", err)
	result.AddCheck("symbol normalized", order.Symbol == "BTCUSD", "got %s", order.Symbol)
	result.AddCheck("starts pending at version 1",
		order.Status == "PENDING" && order.Version == 1,
		"status=%s version=%d", order.Status, order.Version)

	_, err = NewOrderBuilder().WithSymbol("BTCUSD").Buy().
		WithQuantity(decimal.NewFromInt(1)).
		WithPrice(decimal.NewFromInt(10)).
		Build()
	result.AddCheck("missing account reported", err != nil && strings.Contains(err.Error(), "account"),
		"err: %v", err)

	_, err = NewOrderBuilder().ForAccount("acc-1").WithSymbol("BTCUSD").Buy().
		WithQuantity(decimal.NewFromInt(-1)).
		WithPrice(decimal.NewFromInt(10)).
		Build()
	result.AddCheck("negative quantity rejected", err != nil, "err: %v", err)

	result.Finish()
	return result
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
