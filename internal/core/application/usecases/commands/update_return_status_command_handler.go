package commands

import (
	"context"
	"fmt"
)

// UpdateReturnStatusCommandHandler advances the return sub-state on an
// order on behalf of the admin.
type UpdateReturnStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateReturnStatusCommandHandler creates a handler for admin
// return decisions.
func NewUpdateReturnStatusCommandHandler(uowFactory OrderUoWFactory) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return status command.
// Returns order.ErrReturnNotOpen when the order has no return and an
// invalid-value error once the return reached a terminal status.
func (h UpdateReturnStatusCommandHandler) Handle(ctx context.Context, command UpdateReturnStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustManageOrders(); err != nil {
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

	if err = ord.AdvanceReturn(command.Target()); err != nil {
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
