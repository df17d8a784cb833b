package factorymethod

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns"
	"pattern_lab/pkg/idgen"
)

type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "factory-method" }

func demoOrder(qty, price int64) domain.Order {
	return domain.Order{
		ID:        idgen.NewOrderID(),
		AccountID: idgen.NewAccountID(),
		Symbol:    "BTCUSD",
		Side:      domain.SideBuy,
		Quantity:  decimal.NewFromInt(qty),
		Price:     decimal.NewFromInt(price),
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	orders := []domain.Order{
		demoOrder(1, 500),        // small retail
		demoOrder(2, 30_000),     // above strict threshold
		demoOrder(50, 64_000),    // institutional size
	}

	var rows []map[string]any
	for _, o := range orders {
		v := NewValidator(o)
		rows = append(rows, map[string]any{
			"notional":  o.Notional(),
			"validator": v.Name(),
			"result":    v.Validate(o),
		})
	}

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Validator factory selecting the rule tier from order notional",
		Result:      rows,
		Metadata: map[string]any{
			"strict_threshold":        strictThreshold,
			"institutional_threshold": institutionalThreshold,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	small := NewValidator(demoOrder(1, 500))
	result.AddCheck("small order gets basic validator", small.Name() == "basic",
		"got %s", small.Name())

	mid := NewValidator(demoOrder(2, 30_000))
	result.AddCheck("mid order gets strict validator", mid.Name() == "strict",
		"got %s", mid.Name())

	large := NewValidator(demoOrder(50, 64_000))
	result.AddCheck("large order gets institutional validator", large.Name() == "institutional",
		"got %s", large.Name())

	bad := demoOrder(0, 0)
	bad.Symbol = ""
	res := NewValidator(bad).Validate(bad)
	result.AddCheck("invalid order fails validation", !res.Valid && len(res.Errors) == 3,
		"errors: %v", res.Errors)

	result.Finish()
	return result
}
