package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
)

// ErrStatusNotAllowed is returned when a requested order status is not
// a member of the admin's allowed set for the order's current state.
var ErrStatusNotAllowed = errors.New("status not allowed from the order's current state")

// StatusResolver is a domain service that computes the set of order
// statuses an admin may legally set next. The rules are role- and
// state-dependent and, for delivery orders with an assigned delivery,
// driven by the delivery sub-record rather than the order itself.
//
// Business rules:
//   - Terminal orders (CANCELLED, COMPLETED, REJECTED) never change;
//     the allowed set is just the current status.
//   - Pickup orders walk PENDING, ACCEPTED, READY_FOR_PICKUP,
//     COMPLETED, with REJECTED/CANCELLED exits along the way.
//   - Delivery orders without a delivery record stop at ACCEPTED; the
//     admin's move from there is assigning a delivery, not a direct
//     status write.
//   - Once a delivery record exists, the order's allowed statuses are
//     a function of the delivery status alone: the order is view-only
//     while the parcel is in motion, becomes completable at DELIVERED,
//     and is rejected when the delivery fails or is refused.
//
// The current status is always a member of its own allowed set, so the
// admin re-submitting the present value is a legal no-op.
//
// Example usage:
//
//	resolver := NewStatusResolver()
//	allowed := resolver.AllowedOrderStatuses(ord, del)
//	if err := resolver.EnsureAllowed(ord, del, target); err != nil {
//	    // target is illegal from this state
//	}
type StatusResolver struct{}

// NewStatusResolver creates a new StatusResolver instance.
func NewStatusResolver() StatusResolver {
	return StatusResolver{}
}

// AllowedOrderStatuses returns the statuses the admin may set next for
// the given order. del is the order's delivery record, nil when none
// has been assigned yet; it is ignored for pickup orders.
func (r StatusResolver) AllowedOrderStatuses(ord *order.Order, del *delivery.Delivery) []order.Status {
	var deliveryStatus *delivery.Status
	if del != nil {
		s := del.Status()
		deliveryStatus = &s
	}
	return r.AllowedNextStatuses(ord.Type(), ord.Status(), deliveryStatus)
}

// AllowedNextStatuses is the raw transition table behind
// AllowedOrderStatuses, operating on bare status values. Read models
// that never load full aggregates use it to annotate each order row
// with the admin's options.
func (StatusResolver) AllowedNextStatuses(orderType order.Type, current order.Status, deliveryStatus *delivery.Status) []order.Status {
	if current.IsTerminal() {
		return []order.Status{current}
	}

	if orderType == order.TypePickup {
		switch current {
		case order.StatusPending:
			return []order.Status{order.StatusPending, order.StatusAccepted, order.StatusRejected}
		case order.StatusAccepted:
			return []order.Status{order.StatusAccepted, order.StatusReadyForPickup, order.StatusCancelled}
		case order.StatusReadyForPickup:
			return []order.Status{order.StatusReadyForPickup, order.StatusCompleted, order.StatusCancelled}
		default:
			return []order.Status{current}
		}
	}

	if deliveryStatus == nil {
		switch current {
		case order.StatusPending:
			return []order.Status{order.StatusPending, order.StatusAccepted, order.StatusRejected}
		case order.StatusAccepted:
			return []order.Status{order.StatusAccepted, order.StatusCancelled}
		default:
			return []order.Status{current}
		}
	}

	switch *deliveryStatus {
	case delivery.StatusPending:
		return []order.Status{order.StatusAssignedToDelivery, order.StatusRejected, order.StatusCancelled}
	case delivery.StatusPickedUp, delivery.StatusInTransit:
		return []order.Status{order.StatusAssignedToDelivery}
	case delivery.StatusDelivered:
		return []order.Status{order.StatusCompleted}
	case delivery.StatusFailed, delivery.StatusRejected:
		return []order.Status{order.StatusRejected}
	default:
		return []order.Status{current}
	}
}

// EnsureAllowed fails with ErrStatusNotAllowed unless target is a
// member of AllowedOrderStatuses for the order's current state.
func (r StatusResolver) EnsureAllowed(ord *order.Order, del *delivery.Delivery, target order.Status) error {
	for _, allowed := range r.AllowedOrderStatuses(ord, del) {
		if allowed == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s", ErrStatusNotAllowed, target, ord.Status())
}

// CanAssignDelivery reports whether the admin may hand the order to a
// delivery employee: the order must be an accepted delivery order with
// no delivery record yet.
func (StatusResolver) CanAssignDelivery(ord *order.Order, del *delivery.Delivery) error {
	if ord.Type() != order.TypeDelivery {
		return fmt.Errorf("%w: order %s is not a delivery order", ErrStatusNotAllowed, ord.ID())
	}
	if ord.Status() != order.StatusAccepted {
		return fmt.Errorf("%w: order %s is %s, not %s", ErrStatusNotAllowed,
			ord.ID(), ord.Status(), order.StatusAccepted)
	}
	if del != nil {
		return fmt.Errorf("%w: order %s already has a delivery", ErrStatusNotAllowed, ord.ID())
	}
	return nil
}
