package commands

import (
	"context"
	"fmt"
)

// RemoveCartItemCommandHandler drops a single line from the customer's
// cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. Returns errs.ErrObjectNotFound when the
// variant is not in the customer's cart.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	line, err := cartRepo.GetByCustomerAndVariant(ctx, command.Principal().ID(), command.VariantID())
	if err != nil {
		return fmt.Errorf("get cart line: %w", err)
	}

	if err = cartRepo.Remove(ctx, line.ID()); err != nil {
		return fmt.Errorf("remove cart line %s: %w", line.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
