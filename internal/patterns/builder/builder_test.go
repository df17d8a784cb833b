package builder

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

func TestBuildCompleteOrder(t *testing.T) {
	order, err := NewOrderBuilder().
		ForAccount("acct-1").
		WithSymbol("btcusd").
		Buy().
		WithQuantity(decimal.NewFromInt(2)).
		WithPrice(decimal.NewFromInt(50_000)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if order.ID == "" {
		t.Error("order built without an ID")
	}
	if order.Symbol != "BTCUSD" {
		t.Errorf("Symbol = %q, want uppercased BTCUSD", order.Symbol)
	}
	if order.Side != domain.SideBuy {
		t.Errorf("Side = %q", order.Side)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("Status = %q, want PENDING", order.Status)
	}
	if order.Version != 1 {
		t.Errorf("Version = %d, want 1", order.Version)
	}
	if order.CreatedAt.IsZero() || !order.CreatedAt.Equal(order.UpdatedAt) {
		t.Error("timestamps not set consistently")
	}
}

func TestBuildListsAllMissingFields(t *testing.T) {
	_, err := NewOrderBuilder().
		WithQuantity(decimal.NewFromInt(1)).
		WithPrice(decimal.NewFromInt(1)).
		Build()
	if err == nil {
		t.Fatal("Build succeeded with no account, symbol or side")
	}
	for _, field := range []string{"account", "symbol", "side"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention missing field %q", err, field)
		}
	}
}

func TestBuildRejectsNonPositiveAmounts(t *testing.T) {
	// ==================== table ====================
	tests := []struct {
		name    string
		qty     decimal.Decimal
		price   decimal.Decimal
		wantSub string
	}{
		{"zero quantity", decimal.Zero, decimal.NewFromInt(10), "quantity"},
		{"negative quantity", decimal.NewFromInt(-1), decimal.NewFromInt(10), "quantity"},
		{"zero price", decimal.NewFromInt(1), decimal.Zero, "price"},
		{"negative price", decimal.NewFromInt(1), decimal.NewFromInt(-5), "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderBuilder().
				ForAccount("acct-1").
				WithSymbol("ETHUSD").
				Sell().
				WithQuantity(tt.qty).
				WithPrice(tt.price).
				Build()
			if err == nil {
				t.Fatal("Build accepted invalid amount")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestBuildersProduceDistinctIDs(t *testing.T) {
	build := func() domain.Order {
		o, err := NewOrderBuilder().
			ForAccount("acct-1").
			WithSymbol("BTCUSD").
			Buy().
			WithQuantity(decimal.NewFromInt(1)).
			WithPrice(decimal.NewFromInt(1)).
			Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		return o
	}
	if build().ID == build().ID {
		t.Error("two builds produced the same order ID")
	}
}
