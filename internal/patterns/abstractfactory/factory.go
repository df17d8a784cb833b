// Package abstractfactory demonstrates families of related objects:
// each factory pairs a payment gateway with the config tuned for it, so
// a gateway can never be wired with a foreign config.
package abstractfactory

import (
	"time"

	"pattern_lab/internal/gateway"
)

// GatewayConfig is the settings object paired with a gateway.
type GatewayConfig struct {
	Tier        string        `json:"tier"`
	Endpoint    string        `json:"endpoint"`
	Timeout     time.Duration `json:"timeout"`
	MaxRetries  int           `json:"max_retries"`
	SuccessRate float64       `json:"success_rate"`
}

// GatewayFactory builds one consistent gateway+config family.
type GatewayFactory interface {
	Tier() string
	CreateGateway(seed int64) *gateway.FakeGateway
	CreateConfig() GatewayConfig
}

// StandardFactory produces the shared-infrastructure family.
type StandardFactory struct{}

func (f *StandardFactory) Tier() string { return "standard" }

func (f *StandardFactory) CreateConfig() GatewayConfig {
	return GatewayConfig{
		Tier:        f.Tier(),
		Endpoint:    "https://api.payments.example/v1",
		Timeout:     5 * time.Second,
		MaxRetries:  3,
		SuccessRate: 0.90,
	}
}

func (f *StandardFactory) CreateGateway(seed int64) *gateway.FakeGateway {
	cfg := f.CreateConfig()
	return gateway.NewFakeGateway(gateway.FakeGatewayConfig{
		Name:        "standard",
		Latency:     40 * time.Millisecond,
		SuccessRate: cfg.SuccessRate,
		Seed:        seed,
	})
}

// PremiumFactory produces the dedicated-infrastructure family.
type PremiumFactory struct{}

func (f *PremiumFactory) Tier() string { return "premium" }

func (f *PremiumFactory) CreateConfig() GatewayConfig {
	return GatewayConfig{
		Tier:        f.Tier(),
		Endpoint:    "https://premium.payments.example/v1",
		Timeout:     2 * time.Second,
		MaxRetries:  5,
		SuccessRate: 0.99,
	}
}

func (f *PremiumFactory) CreateGateway(seed int64) *gateway.FakeGateway {
	cfg := f.CreateConfig()
	return gateway.NewFakeGateway(gateway.FakeGatewayConfig{
		Name:        "premium",
		Latency:     10 * time.Millisecond,
		SuccessRate: cfg.SuccessRate,
		Seed:        seed,
	})
}

// FactoryFor returns the family factory for an account tier.
func FactoryFor(tier string) GatewayFactory {
	if tier == "premium" {
		return &PremiumFactory{}
	}
	return &StandardFactory{}
}
