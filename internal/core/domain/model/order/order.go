package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrItemsAreRequired is returned when creating an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAddressIsRequired is returned when a DELIVERY order has no address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrAddressNotAllowed is returned when a PICKUP order carries an address.
	ErrAddressNotAllowed = errs.NewValueIsInvalidError("address is only valid for delivery orders")
	// ErrPickupTimeNotAllowed is returned when a DELIVERY order carries a pickup time.
	ErrPickupTimeNotAllowed = errs.NewValueIsInvalidError("pickupTime is only valid for pickup orders")
	// ErrOrderNotCancellable is returned when the customer cancels an
	// order that has already been accepted.
	ErrOrderNotCancellable = errors.New("order can only be cancelled while pending")
	// ErrReturnNotOpen is returned when advancing a return on an order
	// that has none.
	ErrReturnNotOpen = errors.New("order has no open return request")
	// ErrReturnAlreadyOpen is returned when opening a second return.
	ErrReturnAlreadyOpen = errors.New("order already has a return request")
	// ErrOrderNotCompleted is returned when opening a return on an order
	// that is not completed.
	ErrOrderNotCompleted = errors.New("returns can only be opened for completed orders")
)

// Item is a purchased line within an order: a product variant, the
// quantity bought, and the unit price captured at checkout time.
type Item struct {
	variantID kernel.UUID
	quantity  int
	unitPrice float64
}

// NewItem creates a validated order line.
func NewItem(variantID kernel.UUID, quantity int, unitPrice float64) (Item, error) {
	if err := variantID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return Item{variantID: variantID, quantity: quantity, unitPrice: unitPrice}, nil
}

// VariantID returns the purchased product variant's identifier.
func (i Item) VariantID() kernel.UUID {
	return i.variantID
}

// Quantity returns the quantity bought.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price captured at checkout.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

// Order is the aggregate root for a customer's purchase. It owns the
// order lifecycle status, the return sub-state, and the fulfillment
// details that depend on the order type (a delivery address for DELIVERY
// orders, an optional pickup time for PICKUP orders).
//
// Invariants:
//   - exactly one owning customer, fixed at checkout
//   - DELIVERY orders carry an address and never a pickup time;
//     PICKUP orders carry no address
//   - at least one item
//   - a return can only exist once the order is COMPLETED
//   - status moves only through the aggregate's methods; the admin
//     transition table itself lives in the domain services resolver
//     because it also depends on the delivery sub-record
//
// The version field supports compare-and-swap persistence: repositories
// update rows only when the stored version matches and report a version
// conflict otherwise, so racing actors cannot silently overwrite each
// other.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	orderType     Type
	status        Status
	items         []Item
	address       *kernel.Address
	pickupTime    *time.Time
	returnRequest *ReturnRequest
	version       int64
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new pending order at checkout.
//
// The order type governs the optional fields: DELIVERY requires address
// and forbids pickupTime, PICKUP forbids address and allows an optional
// pickupTime. The order starts in PENDING at version 1.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	items []Item,
	address *kernel.Address,
	pickupTime *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		version:       1,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setType(orderType),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setFulfillment(address, pickupTime); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// current status, return sub-state, and version.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	status Status,
	items []Item,
	address *kernel.Address,
	pickupTime *time.Time,
	returnRequest *ReturnRequest,
	version int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		returnRequest: returnRequest,
		version:       version,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setType(orderType),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if err := o.setFulfillment(address, pickupTime); err != nil {
		return nil, err
	}

	if returnRequest != nil {
		if err := returnRequest.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Type returns the fulfillment type (PICKUP or DELIVERY).
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the purchased lines.
func (o *Order) Items() []Item {
	return o.items
}

// Address returns the delivery address. Nil for pickup orders.
func (o *Order) Address() *kernel.Address {
	return o.address
}

// PickupTime returns the requested pickup time. Nil for delivery orders
// and for pickup orders without one.
func (o *Order) PickupTime() *time.Time {
	return o.pickupTime
}

// Return returns the return sub-state. Nil until the customer opens one.
func (o *Order) Return() *ReturnRequest {
	return o.returnRequest
}

// Version returns the persistence version used for compare-and-swap
// updates.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// MoveStatusTo sets the order status on behalf of the admin.
//
// The aggregate enforces the rules that do not depend on the delivery
// sub-record: the target must be a valid status, and a terminal order
// (CANCELLED, COMPLETED, REJECTED) never changes. Callers must validate
// the target against the admin transition resolver first; re-setting the
// current status is a no-op success, matching the resolver tables, which
// always include it.
func (o *Order) MoveStatusTo(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if target == o.status {
		return nil
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order is already %s and cannot change", o.status))
	}

	o.status = target
	return nil
}

// Cancel cancels the order on behalf of the owning customer.
//
// Customers may only cancel while the order is still PENDING; once the
// admin has accepted it, the customer's recourse is the return flow
// after completion.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != StatusPending {
		return ErrOrderNotCancellable
	}

	o.status = StatusCancelled
	return nil
}

// OpenReturn opens a return request on behalf of the owning customer.
//
// Requires the order to be COMPLETED with no existing return. The new
// request starts in PENDING with the supplied method, reason, and
// timestamp.
func (o *Order) OpenReturn(method ReturnMethod, reason string, requestedAt time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != StatusCompleted {
		return ErrOrderNotCompleted
	}
	if o.returnRequest != nil {
		return ErrReturnAlreadyOpen
	}

	request, err := NewReturnRequest(method, reason, requestedAt)
	if err != nil {
		return err
	}

	o.returnRequest = request
	return nil
}

// AdvanceReturn moves the open return to target on behalf of the admin.
// Fails when no return is open or the return has reached a terminal
// status.
func (o *Order) AdvanceReturn(target ReturnStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.returnRequest == nil {
		return ErrReturnNotOpen
	}

	return o.returnRequest.Advance(target)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = items
	return nil
}

// setFulfillment enforces the type-dependent field rules.
func (o *Order) setFulfillment(address *kernel.Address, pickupTime *time.Time) error {
	switch o.orderType {
	case TypeDelivery:
		if address == nil {
			return ErrAddressIsRequired
		}
		if err := address.Validate(); err != nil {
			return err
		}
		if pickupTime != nil {
			return ErrPickupTimeNotAllowed
		}
		o.address = address
	case TypePickup:
		if address != nil {
			return ErrAddressNotAllowed
		}
		o.pickupTime = pickupTime
	}
	return nil
}
