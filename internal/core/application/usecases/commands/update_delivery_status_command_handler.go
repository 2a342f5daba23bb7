package commands

import (
	"context"
	"fmt"
)

// UpdateDeliveryStatusCommandHandler applies an employee's delivery
// status change. Ownership and the transition rules live on the
// delivery aggregate itself; the handler just loads, applies, and
// persists.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for employee
// delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status command.
// Returns delivery.ErrNotAssignedEmployee when the principal is not the
// assigned employee and account.ErrRoleNotAllowed for non-employee
// principals; terminal deliveries reject every further change.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustWorkDeliveries(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	del, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return fmt.Errorf("get delivery %s: %w", command.DeliveryID(), err)
	}

	if err = del.ChangeStatus(command.Target(), command.Principal().ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, del); err != nil {
		return fmt.Errorf("update delivery %s: %w", del.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
