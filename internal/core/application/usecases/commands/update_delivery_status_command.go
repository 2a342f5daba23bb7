package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a delivery employee's progress
// report on an assigned delivery. Only the employee the delivery is
// assigned to may move it, and only along the delivery status machine.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	principal  account.Principal
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to move a delivery's
// status.
func NewUpdateDeliveryStatusCommand(
	principal account.Principal,
	deliveryID kernel.UUID,
	target delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setDeliveryID(deliveryID),
		command.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Principal returns the acting employee.
func (c UpdateDeliveryStatusCommand) Principal() account.Principal {
	return c.principal
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested delivery status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
