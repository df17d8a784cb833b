package chain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

func validOrder() domain.Order {
	return domain.Order{
		Symbol:   "BTCUSD",
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(2),
		Price:    decimal.NewFromInt(50_000),
	}
}

// ==================== full chain ====================

func TestChainPassesValidOrder(t *testing.T) {
	chain := NewValidationChain()
	result := chain.Validate(validOrder())
	if !result.Valid {
		t.Fatalf("valid order rejected: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want empty", result.Errors)
	}
}

func TestChainAccumulatesAcrossHandlers(t *testing.T) {
	chain := NewValidationChain()

	// Fails basic (no quantity) AND compliance (restricted symbol).
	order := domain.Order{
		Symbol: "SANCTUSD",
		Price:  decimal.NewFromInt(1),
	}
	result := chain.Validate(order)

	if result.Valid {
		t.Fatal("order should be rejected")
	}
	if len(result.Errors) < 2 {
		t.Fatalf("Errors = %v, want failures from more than one handler", result.Errors)
	}
	wantPrefixes := []string{"basic:", "compliance:"}
	for _, prefix := range wantPrefixes {
		found := false
		for _, e := range result.Errors {
			if strings.HasPrefix(e, prefix) {
				found = true
			}
		}
		if !found {
			t.Errorf("no %s error in %v", prefix, result.Errors)
		}
	}
}

func TestChainRejectsExcessiveNotional(t *testing.T) {
	chain := NewValidationChain()

	order := validOrder()
	order.Quantity = decimal.NewFromInt(1_000)
	order.Price = decimal.NewFromInt(50_000) // notional 50M

	result := chain.Validate(order)
	if result.Valid {
		t.Fatal("order above risk limit accepted")
	}
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "risk:") {
		t.Errorf("Errors = %v, want single risk failure", result.Errors)
	}
}

// ==================== individual handlers ====================

func TestRiskHandlerBoundary(t *testing.T) {
	h := &RiskHandler{MaxNotional: decimal.NewFromInt(100)}

	order := validOrder()
	order.Quantity = decimal.NewFromInt(1)
	order.Price = decimal.NewFromInt(100) // exactly at limit

	result := domain.OK()
	h.Handle(order, &result)
	if !result.Valid {
		t.Errorf("notional equal to limit rejected: %v", result.Errors)
	}

	order.Price = decimal.NewFromFloat(100.01)
	result = domain.OK()
	h.Handle(order, &result)
	if result.Valid {
		t.Error("notional above limit accepted")
	}
}

func TestComplianceHandlerRestrictedSymbol(t *testing.T) {
	h := &ComplianceHandler{Restricted: map[string]bool{"BADUSD": true}}

	order := validOrder()
	order.Symbol = "BADUSD"

	result := domain.OK()
	h.Handle(order, &result)
	if result.Valid {
		t.Fatal("restricted symbol accepted")
	}
}

func TestSetNextReturnsNextForChaining(t *testing.T) {
	basic := &BasicHandler{}
	risk := &RiskHandler{MaxNotional: decimal.NewFromInt(1)}
	if got := basic.SetNext(risk); got != ValidationHandler(risk) {
		t.Error("SetNext should return the next handler")
	}
}
