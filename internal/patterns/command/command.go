// Package command demonstrates command objects with undo, executed by a
// handler that adds bounded retry, audit logging, and an in-memory queue.
package command

import (
	"context"
	"errors"
	"fmt"

	"pattern_lab/internal/domain"
	"pattern_lab/internal/patterns/repository"
	"pattern_lab/pkg/idgen"
)

// Result is the outcome of one command execution.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Command captures intent plus whatever is needed to undo it.
type Command interface {
	ID() string
	Name() string
	Execute(ctx context.Context) (Result, error)
	Undo(ctx context.Context) error
}

// OrderStore is the order repository commands mutate.
type OrderStore = repository.Repository[repository.StoredOrder]

// PlaceOrderCommand places an order into the store, snapshotting any
// prior state so Undo can restore it (or delete if none existed).
type PlaceOrderCommand struct {
	id    string
	store *OrderStore
	order domain.Order

	executed bool
	hadPrior bool
	prior    repository.StoredOrder
}

// NewPlaceOrderCommand builds the command; nothing runs until Execute.
func NewPlaceOrderCommand(store *OrderStore, order domain.Order) *PlaceOrderCommand {
	return &PlaceOrderCommand{
		id:    idgen.NewCommandID(),
		store: store,
		order: order,
	}
}

func (c *PlaceOrderCommand) ID() string   { return c.id }
func (c *PlaceOrderCommand) Name() string { return "place-order" }

// Execute snapshots prior state, then transitions the order to PLACED
// and stores it.
func (c *PlaceOrderCommand) Execute(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if !c.order.CanTransition(domain.StatusPlaced) {
		return Result{
			Success: false,
			Message: fmt.Sprintf("order %s cannot be placed from %s", c.order.ID, c.order.Status),
		}, nil
	}

	prior, err := c.store.GetByID(c.order.ID)
	switch {
	case err == nil:
		c.hadPrior = true
		c.prior = prior
	case errors.Is(err, domain.ErrNotFound):
		c.hadPrior = false
	default:
		return Result{}, err
	}

	placed := c.order.WithStatus(domain.StatusPlaced)
	c.store.Add(repository.StoredOrder{Order: placed})
	c.executed = true

	return Result{
		Success: true,
		Message: fmt.Sprintf("order %s placed", placed.ID),
		Data:    placed,
	}, nil
}

// Undo restores the snapshot taken by Execute, or deletes the order if
// it did not exist before.
func (c *PlaceOrderCommand) Undo(ctx context.Context) error {
	if !c.executed {
		return fmt.Errorf("command %s was not executed", c.id)
	}

	if c.hadPrior {
		c.store.Add(c.prior)
	} else if err := c.store.Delete(c.order.ID); err != nil {
		return fmt.Errorf("undo place-order: %w", err)
	}

	c.executed = false
	return nil
}
