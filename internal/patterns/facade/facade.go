// Package facade demonstrates a single entry point sequencing
// validate → persist → publish over the subsystems it hides.
package facade

import (
	"context"
	"fmt"
	"log/slog"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns/chain"
	"pattern_lab/internal/patterns/observer"
	"pattern_lab/internal/patterns/repository"
)

// PlacementResult reports one order placement through the facade.
type PlacementResult struct {
	Order      domain.Order            `json:"order"`
	Validation domain.ValidationResult `json:"validation"`
	Published  bool                    `json:"published"`
}

// OrderFacade hides the validation chain, the order and account stores,
// and the event bus behind one PlaceOrder call.
type OrderFacade struct {
	validators *chain.ValidationChain
	store      *repository.Repository[repository.StoredOrder]
	accounts   *repository.Repository[repository.StoredAccount]
	bus        *observer.EventBus
}

// New wires the facade over its subsystems.
func New(store *repository.Repository[repository.StoredOrder],
	accounts *repository.Repository[repository.StoredAccount],
	bus *observer.EventBus) *OrderFacade {
	return &OrderFacade{
		validators: chain.NewValidationChain(),
		store:      store,
		accounts:   accounts,
		bus:        bus,
	}
}

// PlaceOrder validates, persists, and publishes in order. A validation
// failure returns early with the failed result; it is never an error.
func (f *OrderFacade) PlaceOrder(ctx context.Context, order domain.Order) (PlacementResult, error) {
	if err := ctx.Err(); err != nil {
		return PlacementResult{}, err
	}

	validation := f.validators.Validate(order)

	// Known accounts must cover the order notional. Unknown accounts
	// pass through; provisioning is outside the facade.
	if acct, err := f.accounts.GetByID(order.AccountID); err == nil {
		if !acct.CanAfford(order.Notional()) {
			validation.Fail(fmt.Sprintf("account %s balance %s cannot cover notional %s",
				acct.ID, acct.Balance, order.Notional()))
		}
	}

	if !validation.Valid {
		slog.Info("facade rejected order",
			slog.String("order_id", order.ID),
			slog.Any("errors", validation.Errors))
		return PlacementResult{Order: order, Validation: validation}, nil
	}

	if !order.CanTransition(domain.StatusPlaced) {
		return PlacementResult{}, fmt.Errorf("order %s cannot be placed from %s: %w",
			order.ID, order.Status, domain.ErrInvalidTransition)
	}
	placed := order.WithStatus(domain.StatusPlaced)
	f.store.Add(repository.StoredOrder{Order: placed})

	f.bus.Publish("orders.placed", placed)

	return PlacementResult{
		Order:      placed,
		Validation: validation,
		Published:  true,
	}, nil
}

// Store exposes the backing repository for inspection.
func (f *OrderFacade) Store() *repository.Repository[repository.StoredOrder] {
	return f.store
}
