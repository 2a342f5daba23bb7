package delivery

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the state of a delivery record as the assigned
// employee works it.
//
//	  PENDING ----> PICKED_UP ----> IN_TRANSIT ----> DELIVERED
//	     |              |               |  \
//	     |              |               |   +-------> FAILED
//	     v              v               v
//	  REJECTED      REJECTED        REJECTED
//
// DELIVERED, FAILED, and REJECTED are terminal. The assigned employee
// may reject at any point before the parcel is delivered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is set when the admin assigns the delivery.
	StatusPending

	// StatusPickedUp indicates the employee collected the parcel.
	StatusPickedUp

	// StatusInTransit indicates the parcel is on its way.
	StatusInTransit

	// StatusDelivered indicates the parcel reached the customer.
	// Terminal.
	StatusDelivered

	// StatusFailed indicates the delivery attempt failed. Terminal.
	StatusFailed

	// StatusRejected indicates the employee declined the assignment.
	// Terminal.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusFailed:    "FAILED",
		StatusRejected:  "REJECTED",
	}
}

// StatusFromString parses the persisted string form of a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status is a member of the closed delivery
// status set.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the persisted string form, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the delivery can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusRejected
}

// AllowedNext returns the statuses the assigned employee may set from
// the current one. The current status is always a member, so re-setting
// it is a legal no-op; terminal statuses allow nothing else.
func (s Status) AllowedNext() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusPending, StatusPickedUp, StatusRejected}
	case StatusPickedUp:
		return []Status{StatusPickedUp, StatusInTransit, StatusRejected}
	case StatusInTransit:
		return []Status{StatusInTransit, StatusDelivered, StatusFailed, StatusRejected}
	case StatusDelivered:
		return []Status{StatusDelivered}
	case StatusFailed:
		return []Status{StatusFailed}
	case StatusRejected:
		return []Status{StatusRejected}
	default:
		return nil
	}
}

// CanMoveTo reports whether target is a member of AllowedNext.
func (s Status) CanMoveTo(target Status) bool {
	for _, allowed := range s.AllowedNext() {
		if allowed == target {
			return true
		}
	}
	return false
}
