package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The full state machine, including the branches that depend on order type
// and on the delivery sub-record, is owned by the admin transition
// resolver in the domain services package. Status itself is a value object
// that knows its valid members, its terminal subset, and its string
// representation for persistence and display.
//
// Lifecycle overview:
//
//	PENDING ──┬──> ACCEPTED ──┬──> READY_FOR_PICKUP ──> COMPLETED   (pickup)
//	          │               └──> ASSIGNED_TO_DELIVERY ──> COMPLETED (delivery)
//	          └──> REJECTED
//
//	CANCELLED, COMPLETED, and REJECTED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	// Pending orders await admin acceptance and may still be cancelled
	// by the owning customer.
	StatusPending

	// StatusAccepted indicates the admin has accepted the order.
	// Pickup orders proceed to READY_FOR_PICKUP; delivery orders wait in
	// this status for a delivery assignment.
	StatusAccepted

	// StatusRejected indicates the admin declined the order, or a
	// delivery attempt failed or was refused. Terminal.
	StatusRejected

	// StatusReadyForPickup indicates a pickup order is prepared and
	// waiting for the customer.
	StatusReadyForPickup

	// StatusAssignedToDelivery indicates a delivery record exists and a
	// delivery employee is handling the order.
	StatusAssignedToDelivery

	// StatusCompleted indicates the order was fulfilled. Terminal, but
	// completed orders may still enter the return flow.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled by the customer
	// while pending, or by the admin before completion. Terminal.
	StatusCancelled
)

// getStatusStrings returns the persisted string form of every Status,
// including StatusUnknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "UNKNOWN",
		StatusPending:            "PENDING",
		StatusAccepted:           "ACCEPTED",
		StatusRejected:           "REJECTED",
		StatusReadyForPickup:     "READY_FOR_PICKUP",
		StatusAssignedToDelivery: "ASSIGNED_TO_DELIVERY",
		StatusCompleted:          "COMPLETED",
		StatusCancelled:          "CANCELLED",
	}
}

// getValidStatusStrings returns only the valid members, to support
// validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:            "PENDING",
		StatusAccepted:           "ACCEPTED",
		StatusRejected:           "REJECTED",
		StatusReadyForPickup:     "READY_FOR_PICKUP",
		StatusAssignedToDelivery: "ASSIGNED_TO_DELIVERY",
		StatusCompleted:          "COMPLETED",
		StatusCancelled:          "CANCELLED",
	}
}

// StatusFromString parses the persisted string form of a Status.
// Returns an error for anything outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is a member of the closed
// enumeration. StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted string form of the status, or "UNKNOWN"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further admin
// transitions. Terminal statuses are CANCELLED, COMPLETED, and REJECTED;
// the admin resolver returns only the current status for them.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusRejected
}
