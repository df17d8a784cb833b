package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pattern_lab/internal/gateway"
	"pattern_lab/internal/infra"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(testResolver(t), infra.NewMemoryMetrics(), gateway.NewFakePublisher())
}

func TestProcessPaymentUnknownProvider(t *testing.T) {
	s := testService(t)

	_, err := s.ProcessPayment(context.Background(), "apple-pay", Request{
		Amount:   decimal.NewFromInt(100),
		Currency: "USD",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
	require.Contains(t, err.Error(), "STRIPE")
}

func TestProcessPaymentBelowMinimum(t *testing.T) {
	s := testService(t)

	// Crypto minimum is 10.00.
	_, err := s.ProcessPayment(context.Background(), "crypto", Request{
		Amount:   decimal.NewFromInt(5),
		Currency: "USD",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "minimum")
}

func TestProcessPaymentUnsupportedCurrency(t *testing.T) {
	s := testService(t)

	_, err := s.ProcessPayment(context.Background(), "paypal", Request{
		Amount:   decimal.NewFromInt(50),
		Currency: "JPY",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not supported")
}

func TestProcessPaymentCurrencyCaseInsensitive(t *testing.T) {
	s := testService(t)

	// Validation must accept lower-case currency; the charge itself may
	// be declined by the seeded gateway, which is not a validation error.
	_, err := s.ProcessPayment(context.Background(), "stripe", Request{
		Amount:   decimal.NewFromInt(50),
		Currency: "usd",
	})
	if err != nil {
		require.NotContains(t, err.Error(), "not supported")
		require.NotContains(t, err.Error(), "minimum")
	}
}

func TestProcessPaymentRecordsMetricsAndPublishes(t *testing.T) {
	metrics := infra.NewMemoryMetrics()
	publisher := gateway.NewFakePublisher()
	s := NewService(testResolver(t), metrics, publisher)

	_, _ = s.ProcessPayment(context.Background(), "stripe", Request{
		Amount:   decimal.NewFromInt(50),
		Currency: "USD",
	})

	succeeded := metrics.Counter("payment.succeeded", map[string]string{"provider": "STRIPE"})
	failed := metrics.Counter("payment.failed", map[string]string{"provider": "STRIPE"})
	require.Equal(t, int64(1), succeeded+failed, "exactly one outcome counted")

	durations := metrics.Durations("payment.process", map[string]string{"provider": "STRIPE"})
	require.Len(t, durations, 1)

	// One outcome event either way, none for validation failures.
	require.Equal(t, 1, publisher.Count())
	event := publisher.Events()[0]
	require.Contains(t, []string{"payments.processed", "payments.failed"}, event.Topic)

	_, err := s.ProcessPayment(context.Background(), "crypto", Request{
		Amount:   decimal.NewFromInt(1),
		Currency: "USD",
	})
	require.Error(t, err)
	require.Equal(t, 1, publisher.Count(), "validation failures are not published")
}
