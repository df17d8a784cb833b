package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pattern_lab/internal/gateway"
	"pattern_lab/internal/infra"
)

// Service resolves a provider by key, validates the request against the
// provider's declared constraints, then delegates processing. Outcomes
// are published for downstream consumers.
type Service struct {
	resolver  *Resolver
	metrics   infra.Metrics
	publisher gateway.EventPublisher
}

// NewService creates a payment service over the given resolver.
func NewService(resolver *Resolver, metrics infra.Metrics, publisher gateway.EventPublisher) *Service {
	return &Service{resolver: resolver, metrics: metrics, publisher: publisher}
}

// ProcessPayment runs one payment through the named provider.
func (s *Service) ProcessPayment(ctx context.Context, providerKey string, req Request) (Receipt, error) {
	provider, err := s.resolver.Resolve(providerKey)
	if err != nil {
		return Receipt{}, err
	}

	if err := validateRequest(provider, req); err != nil {
		return Receipt{}, err
	}

	start := time.Now()
	receipt, err := provider.Process(ctx, req)
	s.metrics.RecordDuration("payment.process", time.Since(start),
		map[string]string{"provider": provider.Key()})

	if err != nil {
		s.metrics.IncrementCounter("payment.failed",
			map[string]string{"provider": provider.Key()})
		s.publish("payments.failed", map[string]any{
			"provider": provider.Key(),
			"error":    err.Error(),
		})
		slog.Warn("payment failed",
			slog.String("provider", provider.Key()),
			slog.Any("error", err))
		return Receipt{}, err
	}

	s.metrics.IncrementCounter("payment.succeeded",
		map[string]string{"provider": provider.Key()})
	s.publish("payments.processed", receipt)
	slog.Info("payment processed",
		slog.String("provider", provider.Key()),
		slog.String("payment_id", receipt.PaymentID),
		slog.String("amount", receipt.Amount.String()))

	return receipt, nil
}

func (s *Service) publish(topic string, payload any) {
	if err := s.publisher.Publish(topic, payload); err != nil {
		slog.Warn("payment event publish failed",
			slog.String("topic", topic),
			slog.Any("error", err))
	}
}

// Providers returns all registered providers for listing endpoints.
func (s *Service) Providers() []Provider {
	return s.resolver.ListAvailable()
}

func validateRequest(p Provider, req Request) error {
	if req.Amount.LessThan(p.MinAmount()) {
		return fmt.Errorf("amount %s below provider %s minimum %s",
			req.Amount, p.Key(), p.MinAmount())
	}

	currency := strings.ToUpper(req.Currency)
	for _, c := range p.SupportedCurrencies() {
		if c == currency {
			return nil
		}
	}
	return fmt.Errorf("currency %s not supported by provider %s (supported: %s)",
		req.Currency, p.Key(), strings.Join(p.SupportedCurrencies(), ", "))
}
