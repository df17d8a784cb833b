// Package chain demonstrates a three-handler linear validation chain:
// basic field checks, then risk limits, then compliance screening.
package chain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pattern_lab/internal/domain"
)

// ValidationHandler is one link; Handle runs its own checks and passes
// the accumulating result down the chain.
type ValidationHandler interface {
	Name() string
	SetNext(next ValidationHandler) ValidationHandler
	Handle(order domain.Order, result *domain.ValidationResult)
}

// baseHandler carries the next pointer for all links.
type baseHandler struct {
	next ValidationHandler
}

func (b *baseHandler) callNext(order domain.Order, result *domain.ValidationResult) {
	if b.next != nil {
		b.next.Handle(order, result)
	}
}

// BasicHandler checks required fields.
type BasicHandler struct{ baseHandler }

func (h *BasicHandler) Name() string { return "basic" }

func (h *BasicHandler) SetNext(next ValidationHandler) ValidationHandler {
	h.next = next
	return next
}

func (h *BasicHandler) Handle(order domain.Order, result *domain.ValidationResult) {
	if order.Symbol == "" {
		result.Fail("basic: symbol is required")
	}
	if order.Quantity.LessThanOrEqual(decimal.Zero) {
		result.Fail("basic: quantity must be positive")
	}
	if order.Price.LessThanOrEqual(decimal.Zero) {
		result.Fail("basic: price must be positive")
	}
	h.callNext(order, result)
}

// RiskHandler bounds order notional.
type RiskHandler struct {
	baseHandler
	MaxNotional decimal.Decimal
}

func (h *RiskHandler) Name() string { return "risk" }

func (h *RiskHandler) SetNext(next ValidationHandler) ValidationHandler {
	h.next = next
	return next
}

func (h *RiskHandler) Handle(order domain.Order, result *domain.ValidationResult) {
	if order.Notional().GreaterThan(h.MaxNotional) {
		result.Fail(fmt.Sprintf("risk: notional %s exceeds limit %s", order.Notional(), h.MaxNotional))
	}
	h.callNext(order, result)
}

// ComplianceHandler screens restricted symbols.
type ComplianceHandler struct {
	baseHandler
	Restricted map[string]bool
}

func (h *ComplianceHandler) Name() string { return "compliance" }

func (h *ComplianceHandler) SetNext(next ValidationHandler) ValidationHandler {
	h.next = next
	return next
}

func (h *ComplianceHandler) Handle(order domain.Order, result *domain.ValidationResult) {
	if h.Restricted[order.Symbol] {
		result.Fail(fmt.Sprintf("compliance: symbol %s is restricted", order.Symbol))
	}
	h.callNext(order, result)
}

// ValidationChain is the assembled basic → risk → compliance pipeline.
type ValidationChain struct {
	head ValidationHandler
}

// NewValidationChain builds the stock three-link chain.
func NewValidationChain() *ValidationChain {
	basic := &BasicHandler{}
	risk := &RiskHandler{MaxNotional: decimal.NewFromInt(10_000_000)}
	compliance := &ComplianceHandler{Restricted: map[string]bool{"SANCTUSD": true}}

	basic.SetNext(risk).SetNext(compliance)
	return &ValidationChain{head: basic}
}

// Validate runs the order through every link and returns the combined
// result.
func (c *ValidationChain) Validate(order domain.Order) domain.ValidationResult {
	result := domain.OK()
	c.head.Handle(order, &result)
	return result
}
