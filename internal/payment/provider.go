package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/gateway"
)

// Provider is one named payment processor. Providers are stateless after
// construction; each declares its own constraints and handles processing.
type Provider interface {
	// Key is the unique, case-insensitive registration key.
	Key() string
	// DisplayName is the human-readable provider name.
	DisplayName() string
	// MinAmount is the smallest accepted charge.
	MinAmount() decimal.Decimal
	// SupportedCurrencies lists accepted ISO currency codes.
	SupportedCurrencies() []string
	// Process performs the (simulated) charge.
	Process(ctx context.Context, req Request) (Receipt, error)
}

// Request describes one payment to process.
type Request struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customer_email"`
}

// Receipt is the outcome of a processed payment.
type Receipt struct {
	PaymentID   string          `json:"payment_id"`
	Provider    string          `json:"provider"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// fakeProvider adapts a fake gateway into the Provider contract, adding
// per-provider constraints.
type fakeProvider struct {
	key         string
	displayName string
	minAmount   decimal.Decimal
	currencies  []string
	gw          *gateway.FakeGateway
}

func (p *fakeProvider) Key() string                      { return p.key }
func (p *fakeProvider) DisplayName() string              { return p.displayName }
func (p *fakeProvider) MinAmount() decimal.Decimal       { return p.minAmount }
func (p *fakeProvider) SupportedCurrencies() []string    { return append([]string(nil), p.currencies...) }

func (p *fakeProvider) Process(ctx context.Context, req Request) (Receipt, error) {
	receipt, err := p.gw.Charge(ctx, req.Amount, req.Currency)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{
		PaymentID:   receipt.PaymentID,
		Provider:    p.displayName,
		Amount:      receipt.Amount,
		Currency:    receipt.Currency,
		ProcessedAt: receipt.ChargedAt,
	}, nil
}

// ProviderSet bundles construction parameters shared by the stock fakes.
type ProviderSet struct {
	Latency    time.Duration
	Seed       int64
	RatePerSec float64
	Burst      int
}

// Stripe-like fake: low minimum, broad currency support, high success rate.
func NewStripeProvider(set ProviderSet) Provider {
	return &fakeProvider{
		key:         "STRIPE",
		displayName: "Stripe",
		minAmount:   decimal.NewFromFloat(0.50),
		currencies:  []string{"USD", "EUR", "GBP"},
		gw: gateway.NewFakeGateway(gateway.FakeGatewayConfig{
			Name:        "stripe",
			Latency:     set.Latency,
			SuccessRate: 0.95,
			Seed:        set.Seed,
			RatePerSec:  set.RatePerSec,
			Burst:       set.Burst,
		}),
	}
}

// PayPal-like fake: higher minimum, slightly lower success rate.
func NewPayPalProvider(set ProviderSet) Provider {
	return &fakeProvider{
		key:         "PAYPAL",
		displayName: "PayPal",
		minAmount:   decimal.NewFromFloat(1.00),
		currencies:  []string{"USD", "EUR"},
		gw: gateway.NewFakeGateway(gateway.FakeGatewayConfig{
			Name:        "paypal",
			Latency:     set.Latency,
			SuccessRate: 0.90,
			Seed:        set.Seed + 1,
			RatePerSec:  set.RatePerSec,
			Burst:       set.Burst,
		}),
	}
}

// Crypto fake: large minimum, narrow currency support, lowest success rate.
func NewCryptoProvider(set ProviderSet) Provider {
	return &fakeProvider{
		key:         "CRYPTO",
		displayName: "CryptoPay",
		minAmount:   decimal.NewFromFloat(10.00),
		currencies:  []string{"USD"},
		gw: gateway.NewFakeGateway(gateway.FakeGatewayConfig{
			Name:        "crypto",
			Latency:     set.Latency,
			SuccessRate: 0.80,
			Seed:        set.Seed + 2,
			RatePerSec:  set.RatePerSec,
			Burst:       set.Burst,
		}),
	}
}
