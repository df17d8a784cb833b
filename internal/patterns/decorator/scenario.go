package decorator

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/gateway"
	"pattern_lab/internal/infra"
	"pattern_lab/internal/patterns"
)

type Scenario struct {
	metrics *infra.MemoryMetrics
	seed    int64
}

func NewScenario(metrics *infra.MemoryMetrics, seed int64) *Scenario {
	return &Scenario{metrics: metrics, seed: seed}
}

func (s *Scenario) Name() string { return "decorator" }

// stack builds core → metrics → logging → retry, outermost last.
func (s *Scenario) stack(successRate float64) Processor {
	gw := gateway.NewFakeGateway(gateway.FakeGatewayConfig{
		Name:        "decorated",
		Latency:     time.Millisecond,
		SuccessRate: successRate,
		Seed:        s.seed,
	})
	return WithRetry(WithLogging(WithMetrics(NewCoreProcessor(gw), s.metrics)))
}

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	processor := s.stack(1.0)
	receipt, err := processor.Process(ctx, decimal.NewFromInt(250), "USD")

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Three stateless decorators (metrics, logging, retry) around one core processor",
		Result: map[string]any{
			"receipt": receipt,
			"error":   err == nil,
		},
		Metadata: map[string]any{
			"success_calls": s.metrics.Counter("processor.calls", map[string]string{"outcome": "success"}),
			"failure_calls": s.metrics.Counter("processor.calls", map[string]string{"outcome": "failure"}),
			"counters":      s.metrics.Snapshot(),
		},
	}
}

// countingProcessor records call counts for retry assertions.
type countingProcessor struct {
	inner Processor
	calls int
}

func (c *countingProcessor) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	c.calls++
	return c.inner.Process(ctx, amount, currency)
}

// failingProcessor always errors.
type failingProcessor struct{}

func (failingProcessor) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	return gateway.ChargeReceipt{}, errors.New("processor down")
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	processor := s.stack(1.0)
	receipt, err := processor.Process(ctx, decimal.NewFromInt(100), "USD")
	result.AddCheck("full stack processes payment",
		err == nil && receipt.PaymentID != "",
		"err=%v", err)

	latencies := s.metrics.Durations("processor.latency", map[string]string{"currency": "USD"})
	result.AddCheck("metrics decorator records latency", len(latencies) > 0,
		"%d samples", len(latencies))

	counting := &countingProcessor{inner: failingProcessor{}}
	_, err = WithRetry(counting).Process(ctx, decimal.NewFromInt(5), "USD")
	result.AddCheck("retry decorator bounds at 3 attempts",
		err != nil && counting.calls == 3,
		"calls=%d err=%v", counting.calls, err)

	result.Finish()
	return result
}
