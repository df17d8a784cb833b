package adapter

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "adapter" }

func sampleOrder(id string) domain.Order {
	return domain.Order{
		ID:       id,
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.NewFromInt(64_000),
		Status:   domain.StatusFilled,
	}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	settler := NewLegacyAdapter(&LegacySettlementClient{})

	good, err := settler.Settle(ctx, sampleOrder("ord-1"))
	_, badErr := settler.Settle(ctx, domain.Order{ID: ""})

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Legacy synchronous settlement client behind the modern context-based interface",
		Result: map[string]any{
			"settled":       good,
			"settle_error":  errText(err),
			"invalid_error": errText(badErr),
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}
	settler := NewLegacyAdapter(&LegacySettlementClient{})

	res, err := settler.Settle(ctx, sampleOrder("ord-42"))
	result.AddCheck("valid order settles", err == nil && strings.HasPrefix(res.Reference, "settle-ord-42"),
		"ref=%s err=%v", res.Reference, err)

	_, err = settler.Settle(ctx, sampleOrder(""))
	result.AddCheck("legacy error translated", err != nil && strings.Contains(err.Error(), "missing order id"),
		"err: %v", err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = settler.Settle(cancelled, sampleOrder("ord-43"))
	result.AddCheck("cancellation honoured", err == context.Canceled, "err: %v", err)

	result.Finish()
	return result
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
