// Package strategyadv demonstrates the strategy pattern combined with a
// key-based resolver: named payment providers registered once at startup
// and resolved per request.
package strategyadv

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/patterns"
	"pattern_lab/internal/payment"
)

type Scenario struct {
	service  *payment.Service
	resolver *payment.Resolver
}

func NewScenario(service *payment.Service, resolver *payment.Resolver) *Scenario {
	return &Scenario{service: service, resolver: resolver}
}

func (s *Scenario) Name() string { return "strategy-advanced" }

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	var rows []map[string]any
	for _, p := range s.resolver.ListAvailable() {
		receipt, err := s.service.ProcessPayment(ctx, p.Key(), payment.Request{
			Amount:        decimal.NewFromInt(120),
			Currency:      "USD",
			CustomerEmail: "demo@example.com",
		})
		row := map[string]any{
			"provider":   p.Key(),
			"min_amount": p.MinAmount(),
			"currencies": p.SupportedCurrencies(),
		}
		if err != nil {
			row["error"] = err.Error()
		} else {
			row["receipt"] = receipt
		}
		rows = append(rows, row)
	}

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Named providers behind an immutable case-insensitive resolver",
		Result:      rows,
		Metadata:    map[string]any{"registered": s.resolver.Keys()},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	upper, errUpper := s.resolver.Resolve("STRIPE")
	lower, errLower := s.resolver.Resolve("stripe")
	result.AddCheck("resolution is case-insensitive",
		errUpper == nil && errLower == nil && upper == lower,
		"same provider for both spellings")

	_, err := s.resolver.Resolve("unknown")
	listsAll := err != nil
	for _, key := range s.resolver.Keys() {
		if err == nil || !strings.Contains(err.Error(), key) {
			listsAll = false
		}
	}
	result.AddCheck("not-found error lists available keys", listsAll, "err=%v", err)

	_, err = s.service.ProcessPayment(ctx, "CRYPTO", payment.Request{
		Amount:   decimal.NewFromFloat(0.25),
		Currency: "USD",
	})
	result.AddCheck("amount below provider minimum rejected",
		err != nil && strings.Contains(err.Error(), "minimum"),
		"err=%v", err)

	_, err = s.service.ProcessPayment(ctx, "CRYPTO", payment.Request{
		Amount:   decimal.NewFromInt(50),
		Currency: "GBP",
	})
	result.AddCheck("unsupported currency rejected",
		err != nil && strings.Contains(err.Error(), "not supported"),
		"err=%v", err)

	result.AddCheck("all stock providers registered",
		len(s.resolver.Keys()) >= 3,
		"keys=%v", s.resolver.Keys())

	result.Finish()
	return result
}
