package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	set := ProviderSet{Seed: 1}
	r, err := NewResolver(
		NewStripeProvider(set),
		NewPayPalProvider(set),
		NewCryptoProvider(set),
	)
	require.NoError(t, err)
	return r
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := testResolver(t)

	upper, err := r.Resolve("STRIPE")
	require.NoError(t, err)

	lower, err := r.Resolve("stripe")
	require.NoError(t, err)

	mixed, err := r.Resolve("StRiPe")
	require.NoError(t, err)

	require.Same(t, upper, lower)
	require.Same(t, upper, mixed)
}

func TestResolveUnknownListsAvailable(t *testing.T) {
	r := testResolver(t)

	_, err := r.Resolve("unknown")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrProviderNotFound))
	require.Contains(t, err.Error(), "STRIPE")
	require.Contains(t, err.Error(), "PAYPAL")
	require.Contains(t, err.Error(), "CRYPTO")
}

func TestResolverRejectsDuplicateKeys(t *testing.T) {
	set := ProviderSet{Seed: 1}
	_, err := NewResolver(NewStripeProvider(set), NewStripeProvider(set))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestListAvailableSortedByKey(t *testing.T) {
	r := testResolver(t)

	providers := r.ListAvailable()
	require.Len(t, providers, 3)
	require.Equal(t, []string{"CRYPTO", "PAYPAL", "STRIPE"}, r.Keys())
	require.Equal(t, "CRYPTO", providers[0].Key())
}
