package prototype

import (
	"context"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "prototype" }

func baseSnapshot() *OrderSnapshot {
	order := domain.Order{
		ID:       idgen.NewOrderID(),
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.NewFromInt(64_000),
		Status:   domain.StatusPlaced,
	}
	return NewSnapshot(order,
		map[string]string{"desk": "alpha", "strategy": "momentum"},
		[]string{"demo", "spot"})
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	original := baseSnapshot()
	clone := original.Clone()
	clone.Metadata["desk"] = "beta"
	clone.Tags = append(clone.Tags, "cloned")
	clone.Order = clone.Order.WithStatus(domain.StatusFilled)

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Deep-copy snapshot/clone pair; clone mutations stay isolated",
		Result: map[string]any{
			"original": original,
			"clone":    clone,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	original := baseSnapshot()
	clone := original.Clone()

	clone.Metadata["desk"] = "beta"
	result.AddCheck("metadata isolated", original.Metadata["desk"] == "alpha",
		"original desk=%s", original.Metadata["desk"])

	clone.Tags[0] = "mutated"
	result.AddCheck("tags isolated", original.Tags[0] == "demo",
		"original first tag=%s", original.Tags[0])

	clone.Order = clone.Order.WithStatus(domain.StatusFilled)
	result.AddCheck("order copy isolated", original.Order.Status == domain.StatusPlaced,
		"original status=%s", original.Order.Status)

	result.AddCheck("clone preserved capture time", clone.TakenAt.Equal(original.TakenAt),
		"taken_at matches")

	result.Finish()
	return result
}
