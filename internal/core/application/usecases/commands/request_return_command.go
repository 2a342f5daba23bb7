package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand represents a customer opening a return on a
// completed order: how the goods come back and why.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	orderID   kernel.UUID
	method    order.ReturnMethod
	reason    string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a command to open a return. The
// reason is required; the method must be UPS_STORE or IN_STORE.
func NewRequestReturnCommand(
	principal account.Principal,
	orderID kernel.UUID,
	method order.ReturnMethod,
	reason string,
) (RequestReturnCommand, error) {
	command := RequestReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setOrderID(orderID),
		command.setMethod(method),
		command.setReason(reason),
	); err != nil {
		return RequestReturnCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// Principal returns the acting customer.
func (c RequestReturnCommand) Principal() account.Principal {
	return c.principal
}

// OrderID returns the identifier of the order to return.
func (c RequestReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns how the goods come back.
func (c RequestReturnCommand) Method() order.ReturnMethod {
	return c.method
}

// Reason returns the customer's stated reason.
func (c RequestReturnCommand) Reason() string {
	return c.reason
}

func (c *RequestReturnCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *RequestReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestReturnCommand) setMethod(method order.ReturnMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *RequestReturnCommand) setReason(reason string) error {
	if reason == "" {
		return order.ErrReturnReasonIsRequired
	}
	c.reason = reason
	return nil
}
