package delivery

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance
	// was not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
	// ErrNotAssignedEmployee is returned when someone other than the
	// assigned employee changes the delivery status.
	ErrNotAssignedEmployee = errors.New("only the assigned employee may change the delivery status")
)

// Delivery is the aggregate root for a delivery assignment. It binds an
// order to exactly one delivery employee and tracks the employee's
// progress through the delivery status machine.
//
// Every status change is gated on the acting employee being the one the
// delivery was assigned to. The version field supports compare-and-swap
// persistence, same as the order aggregate.
type Delivery struct {
	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	status           Status
	version          int64
	createdAt        time.Time

	isConstructed bool
}

// NewDelivery creates a new pending delivery assignment at version 1.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		version:       1,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	status Status,
	version int64,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		version:       version,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDeliveryPersonID(deliveryPersonID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the delivered order's identifier. An order has at
// most one delivery record.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DeliveryPersonID returns the assigned employee's identifier.
func (d *Delivery) DeliveryPersonID() kernel.UUID {
	return d.deliveryPersonID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// Version returns the persistence version used for compare-and-swap
// updates.
func (d *Delivery) Version() int64 {
	return d.version
}

// CreatedAt returns when the delivery was assigned.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// IsAssignedTo reports whether the delivery belongs to the given
// employee.
func (d *Delivery) IsAssignedTo(employeeID kernel.UUID) bool {
	return d.deliveryPersonID.IsEqual(employeeID)
}

// ChangeStatus moves the delivery to target on behalf of the acting
// employee.
//
// Fails when the actor is not the assigned employee or when target is
// not reachable from the current status. Re-setting the current status
// is a no-op success.
func (d *Delivery) ChangeStatus(target Status, actingEmployeeID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !d.IsAssignedTo(actingEmployeeID) {
		return ErrNotAssignedEmployee
	}
	if !d.status.CanMoveTo(target) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("delivery cannot move from %s to %s", d.status, target))
	}

	d.status = target
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	d.deliveryPersonID = deliveryPersonID
	return nil
}
