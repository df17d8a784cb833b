// Package app wires configuration, logging, the payment resolver, and
// the pattern registry into a runnable system.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"pattern_lab/internal/gateway"
	"pattern_lab/internal/infra"
	"pattern_lab/internal/patterns"
	"pattern_lab/internal/patterns/abstractfactory"
	"pattern_lab/internal/patterns/adapter"
	"pattern_lab/internal/patterns/builder"
	"pattern_lab/internal/patterns/chain"
	"pattern_lab/internal/patterns/command"
	"pattern_lab/internal/patterns/decorator"
	"pattern_lab/internal/patterns/facade"
	"pattern_lab/internal/patterns/factorymethod"
	"pattern_lab/internal/patterns/mediator"
	"pattern_lab/internal/patterns/observer"
	"pattern_lab/internal/patterns/prototype"
	"pattern_lab/internal/patterns/repository"
	"pattern_lab/internal/patterns/singleton"
	"pattern_lab/internal/patterns/state"
	"pattern_lab/internal/patterns/strategy"
	"pattern_lab/internal/patterns/strategyadv"
	"pattern_lab/internal/payment"
)

// Bootstrap holds the long-lived objects built at startup.
type Bootstrap struct {
	Config    *infra.Config
	Metrics   *infra.MemoryMetrics
	Bus       *observer.EventBus
	Publisher *gateway.FakePublisher
	Resolver  *payment.Resolver
	Payments  *payment.Service
	Registry  *patterns.Registry
}

// Initialize loads config, sets up logging, and wires every subsystem.
func Initialize(configPath string) (*Bootstrap, error) {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(infra.NewLogger(cfg))
	slog.Info("bootstrapping",
		slog.String("version", cfg.App.Version),
		slog.Int64("gateway_seed", cfg.Gateways.Seed))

	metrics := infra.NewMemoryMetrics()
	bus := observer.NewEventBus()
	publisher := gateway.NewFakePublisher()

	set := payment.ProviderSet{
		Latency:    time.Duration(cfg.Gateways.LatencyMS) * time.Millisecond,
		Seed:       cfg.Gateways.Seed,
		RatePerSec: cfg.Gateways.RatePerSec,
		Burst:      cfg.Gateways.Burst,
	}
	resolver, err := payment.NewResolver(
		payment.NewStripeProvider(set),
		payment.NewPayPalProvider(set),
		payment.NewCryptoProvider(set),
	)
	if err != nil {
		return nil, fmt.Errorf("building provider resolver: %w", err)
	}
	payments := payment.NewService(resolver, metrics, publisher)

	registry, err := patterns.NewRegistry(
		singleton.NewScenario(),
		factorymethod.NewScenario(),
		abstractfactory.NewScenario(cfg.Gateways.Seed),
		builder.NewScenario(),
		adapter.NewScenario(),
		command.NewScenario(),
		decorator.NewScenario(metrics, cfg.Gateways.Seed),
		strategy.NewScenario(),
		observer.NewScenario(bus),
		facade.NewScenario(bus),
		repository.NewScenario(),
		mediator.NewScenario(),
		state.NewScenario(),
		prototype.NewScenario(),
		chain.NewScenario(),
		strategyadv.NewScenario(payments, resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("building pattern registry: %w", err)
	}

	metrics.SetGauge("patterns.registered", float64(len(registry.Names())), nil)
	slog.Info("pattern registry ready", slog.Int("patterns", len(registry.Names())))

	return &Bootstrap{
		Config:    cfg,
		Metrics:   metrics,
		Bus:       bus,
		Publisher: publisher,
		Resolver:  resolver,
		Payments:  payments,
		Registry:  registry,
	}, nil
}
