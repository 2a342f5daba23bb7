package commands

import (
	"context"
	"fmt"
	"time"
)

// RequestReturnCommandHandler opens a return on a customer's completed
// order. The order aggregate enforces the completed-and-no-return
// precondition; the handler adds the ownership check.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return request.
// Returns ErrNotOrderOwner for foreign orders,
// order.ErrOrderNotCompleted before completion, and
// order.ErrReturnAlreadyOpen for repeated requests.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, command RequestReturnCommand) error {
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

	if err = ord.OpenReturn(command.Method(), command.Reason(), time.Now().UTC()); err != nil {
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
