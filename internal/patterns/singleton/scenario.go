package singleton

import (
	"context"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/patterns"
)

// Scenario runs the singleton demo/test sequence.
type Scenario struct{}

func NewScenario() *Scenario { return &Scenario{} }

func (s *Scenario) Name() string { return "singleton" }

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	cache := Instance()
	cache.SetQuote("BTCUSD", decimal.NewFromInt(64250))
	cache.SetQuote("ETHUSD", decimal.NewFromInt(3410))

	btc, _ := cache.GetQuote("BTCUSD")
	_, missed := cache.GetQuote("DOGEUSD")
	hits, misses, size := cache.Stats()

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Process-lifetime market data cache created once and shared by reference",
		Result: map[string]any{
			"btc_quote":   btc,
			"doge_cached": missed,
			"cache_size":  size,
		},
		Metadata: map[string]any{
			"hits":   hits,
			"misses": misses,
		},
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	a := Instance()
	b := Instance()
	result.AddCheck("same instance", a == b,
		"Instance() returned %p and %p", a, b)

	a.SetQuote("TESTUSD", decimal.NewFromInt(100))
	q, ok := b.GetQuote("TESTUSD")
	result.AddCheck("shared state", ok && q.Price.Equal(decimal.NewFromInt(100)),
		"quote written through one handle visible through the other: %v", ok)

	hits, _, _ := a.Stats()
	result.AddCheck("stats tracked", hits >= 1, "hit counter at %d", hits)

	result.Finish()
	return result
}
