package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand represents the admin advancing a customer's
// open return. REFUNDED and CANCELLED freeze the return permanently.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	orderID   kernel.UUID
	target    order.ReturnStatus

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to advance a return.
func NewUpdateReturnStatusCommand(
	principal account.Principal,
	orderID kernel.UUID,
	target order.ReturnStatus,
) (UpdateReturnStatusCommand, error) {
	command := UpdateReturnStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// Principal returns the acting admin.
func (c UpdateReturnStatusCommand) Principal() account.Principal {
	return c.principal
}

// OrderID returns the identifier of the order whose return advances.
func (c UpdateReturnStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested return status.
func (c UpdateReturnStatusCommand) Target() order.ReturnStatus {
	return c.target
}

func (c *UpdateReturnStatusCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *UpdateReturnStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateReturnStatusCommand) setTarget(target order.ReturnStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
