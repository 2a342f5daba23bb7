package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents checkout: turn the customer's cart into
// a pending order with a simulated payment record. The address is
// required for DELIVERY orders; a pickup time may accompany PICKUP
// orders. Field interdependence is enforced when the order aggregate is
// built.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customer, orderID, order.TypeDelivery,
//	    &address, nil, "CREDIT_CARD")
//	if err != nil {
//	    return err
//	}
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	principal     account.Principal
	orderID       kernel.UUID
	orderType     order.Type
	address       *kernel.Address
	pickupTime    *time.Time
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
func NewPlaceOrderCommand(
	principal account.Principal,
	orderID kernel.UUID,
	orderType order.Type,
	address *kernel.Address,
	pickupTime *time.Time,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		address:    address,
		pickupTime: pickupTime,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setOrderID(orderID),
		command.setOrderType(orderType),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Principal returns the acting customer.
func (c PlaceOrderCommand) Principal() account.Principal {
	return c.principal
}

// OrderID returns the identifier the new order will carry.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the fulfillment type.
func (c PlaceOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Address returns the delivery address, nil for pickup orders.
func (c PlaceOrderCommand) Address() *kernel.Address {
	return c.address
}

// PickupTime returns the requested pickup time, if any.
func (c PlaceOrderCommand) PickupTime() *time.Time {
	return c.pickupTime
}

// PaymentMethod returns the payment method label the customer picked.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}
