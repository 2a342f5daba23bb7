package commands

import (
	"context"
	"fmt"
)

// ClearCartCommandHandler empties a customer's cart in one statement.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command. Clearing an already empty cart
// succeeds.
func (h ClearCartCommandHandler) Handle(ctx context.Context, command ClearCartCommand) error {
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

	if err := uow.CartRepository().RemoveAllForCustomer(ctx, command.Principal().ID()); err != nil {
		return fmt.Errorf("clear cart for customer %s: %w", command.Principal().ID(), err)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
