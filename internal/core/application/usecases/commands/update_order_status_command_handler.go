package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies admin-driven order status
// changes. The requested target is checked against the allowed set
// computed by the transition resolver, which folds in the order's
// delivery record when one exists.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for admin order
// status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderDeliveryUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the order and its delivery record (if any), verifies the target
// is a member of the resolver's allowed set, and persists the change.
// Returns services.ErrStatusNotAllowed for illegal targets and
// account.ErrRoleNotAllowed for non-admin principals.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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
	deliveryRepo := uow.DeliveryRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return fmt.Errorf("get order %s: %w", command.OrderID(), err)
	}

	var del *delivery.Delivery
	del, err = deliveryRepo.GetByOrder(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		del = nil
	} else if err != nil {
		return fmt.Errorf("get delivery for order %s: %w", command.OrderID(), err)
	}

	resolver := services.NewStatusResolver()
	if err = resolver.EnsureAllowed(ord, del, command.Target()); err != nil {
		return err
	}

	if err = ord.MoveStatusTo(command.Target()); err != nil {
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
