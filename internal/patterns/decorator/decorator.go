// Package decorator demonstrates stacking logging, metrics, and retry
// wrappers around one core payment processor.
package decorator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/gateway"
	"pattern_lab/internal/infra"
)

// Processor is the contract every layer of the stack satisfies.
type Processor interface {
	Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error)
}

// CoreProcessor is the innermost layer delegating to a gateway.
type CoreProcessor struct {
	gw gateway.PaymentGateway
}

func NewCoreProcessor(gw gateway.PaymentGateway) *CoreProcessor {
	return &CoreProcessor{gw: gw}
}

func (p *CoreProcessor) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	return p.gw.Charge(ctx, amount, currency)
}

// LoggingDecorator logs entry and outcome around the inner processor.
type LoggingDecorator struct {
	inner Processor
}

func WithLogging(inner Processor) *LoggingDecorator {
	return &LoggingDecorator{inner: inner}
}

func (d *LoggingDecorator) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	slog.Info("processing payment",
		slog.String("amount", amount.String()),
		slog.String("currency", currency))

	receipt, err := d.inner.Process(ctx, amount, currency)
	if err != nil {
		slog.Warn("payment processing failed", slog.Any("error", err))
		return receipt, err
	}

	slog.Info("payment processed", slog.String("payment_id", receipt.PaymentID))
	return receipt, nil
}

// MetricsDecorator records counters and latency around the inner processor.
type MetricsDecorator struct {
	inner   Processor
	metrics infra.Metrics
}

func WithMetrics(inner Processor, metrics infra.Metrics) *MetricsDecorator {
	return &MetricsDecorator{inner: inner, metrics: metrics}
}

func (d *MetricsDecorator) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	start := time.Now()
	receipt, err := d.inner.Process(ctx, amount, currency)
	d.metrics.RecordDuration("processor.latency", time.Since(start),
		map[string]string{"currency": currency})

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	d.metrics.IncrementCounter("processor.calls", map[string]string{"outcome": outcome})

	return receipt, err
}

// RetryDecorator retries transient failures with linear backoff,
// bounded at three attempts like the command handler.
type RetryDecorator struct {
	inner       Processor
	maxAttempts int
}

func WithRetry(inner Processor) *RetryDecorator {
	return &RetryDecorator{inner: inner, maxAttempts: 3}
}

func (d *RetryDecorator) Process(ctx context.Context, amount decimal.Decimal, currency string) (gateway.ChargeReceipt, error) {
	var lastErr error

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		receipt, err := d.inner.Process(ctx, amount, currency)
		if err == nil {
			return receipt, nil
		}
		lastErr = err

		if attempt < d.maxAttempts {
			if werr := infra.SleepContext(ctx, infra.LinearBackoff(attempt)); werr != nil {
				return gateway.ChargeReceipt{}, fmt.Errorf("retry aborted: %w", werr)
			}
		}
	}

	return gateway.ChargeReceipt{}, fmt.Errorf("payment failed after %d attempts: %w", d.maxAttempts, lastErr)
}
