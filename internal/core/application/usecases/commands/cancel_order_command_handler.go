package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotOrderOwner is returned when a customer acts on an order that
// belongs to someone else.
var ErrNotOrderOwner = errors.New("order does not belong to the acting customer")

// CancelOrderCommandHandler cancels a customer's pending order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for customer order
// cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns ErrNotOrderOwner when the order belongs to another customer
// and order.ErrOrderNotCancellable once the order has left PENDING.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustShop(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return fmt.Errorf("get order %s: %w", command.OrderID(), err)
	}

	if !ord.CustomerID().IsEqual(command.Principal().ID()) {
		return ErrNotOrderOwner
	}

	if err = ord.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return fmt.Errorf("update order %s: %w", ord.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
