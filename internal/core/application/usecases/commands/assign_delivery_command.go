package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents the admin handing an accepted
// delivery order to a delivery employee. Handling it creates the
// delivery record and flips the order status in one transaction.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(admin, orderID, employeeID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	principal  account.Principal
	orderID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign an order to a
// delivery employee.
func NewAssignDeliveryCommand(
	principal account.Principal,
	orderID kernel.UUID,
	employeeID kernel.UUID,
) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setOrderID(orderID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// Principal returns the acting admin.
func (c AssignDeliveryCommand) Principal() account.Principal {
	return c.principal
}

// OrderID returns the identifier of the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the chosen delivery employee's identifier.
func (c AssignDeliveryCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *AssignDeliveryCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}
