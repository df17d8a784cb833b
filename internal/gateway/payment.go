package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"pattern_lab/internal/infra"
	"pattern_lab/pkg/idgen"
)

// PaymentGateway is the outbound boundary to a payment processor.
// All implementations here are fakes: they simulate latency and a fixed
// success probability instead of performing real I/O.
type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, currency string) (ChargeReceipt, error)
}

// ChargeReceipt is the processor's acknowledgement of a charge.
type ChargeReceipt struct {
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Gateway   string          `json:"gateway"`
	ChargedAt time.Time       `json:"charged_at"`
}

// FakeGateway simulates a payment processor with deterministic outcomes.
// Outcomes come from an injected seeded source, so tests stay reproducible
// under concurrent execution.
type FakeGateway struct {
	name        string
	latency     time.Duration
	successRate float64
	rng         *infra.SeededRand
	limiter     *rate.Limiter
}

// FakeGatewayConfig holds construction parameters for a fake gateway.
type FakeGatewayConfig struct {
	Name        string
	Latency     time.Duration
	SuccessRate float64 // in [0,1]
	Seed        int64
	RatePerSec  float64
	Burst       int
}

// NewFakeGateway creates a deterministic fake processor.
func NewFakeGateway(cfg FakeGatewayConfig) *FakeGateway {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 100
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	return &FakeGateway{
		name:        cfg.Name,
		latency:     cfg.Latency,
		successRate: cfg.SuccessRate,
		rng:         infra.NewSeededRand(cfg.Seed),
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
	}
}

// Name returns the gateway identifier used in receipts and logs.
func (g *FakeGateway) Name() string { return g.name }

// Charge simulates one processor round trip: rate limit, latency, then a
// seeded coin flip against the configured success rate.
func (g *FakeGateway) Charge(ctx context.Context, amount decimal.Decimal, currency string) (ChargeReceipt, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return ChargeReceipt{}, fmt.Errorf("gateway %s rate limit: %w", g.name, err)
	}

	if g.latency > 0 {
		if err := infra.SleepContext(ctx, g.latency); err != nil {
			return ChargeReceipt{}, fmt.Errorf("gateway %s: %w", g.name, err)
		}
	}

	if g.rng.Float64() >= g.successRate {
		slog.Debug("fake gateway declined charge",
			slog.String("gateway", g.name),
			slog.String("amount", amount.String()))
		return ChargeReceipt{}, fmt.Errorf("gateway %s declined the charge", g.name)
	}

	receipt := ChargeReceipt{
		PaymentID: idgen.NewPaymentID(),
		Amount:    amount,
		Currency:  currency,
		Gateway:   g.name,
		ChargedAt: time.Now(),
	}

	slog.Debug("fake gateway accepted charge",
		slog.String("gateway", g.name),
		slog.String("payment_id", receipt.PaymentID))

	return receipt, nil
}
