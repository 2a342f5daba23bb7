package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
)

// Domain errors for the return flow.
var (
	// ErrReturnReasonIsRequired is returned when a return is opened
	// without a reason.
	ErrReturnReasonIsRequired = errs.NewValueIsRequiredError("returnReason")
	// ErrReturnRequestIsNotConstructed is returned when using a
	// ReturnRequest that was not created via a constructor.
	ErrReturnRequestIsNotConstructed = errors.New("ReturnRequest must be created via NewReturnRequest or RestoreReturnRequest")
)

// ReturnStatus represents the state of a return request embedded in a
// completed order.
//
// State transitions:
//
//	PENDING ──> any of {APPROVED, RECEIVED, REFUNDED, REJECTED, CANCELLED}
//
// The customer sets PENDING by opening the return; every later move is
// admin-only and unordered between the intermediate states. REFUNDED and
// CANCELLED are terminal: once reached, no further writes are accepted.
type ReturnStatus int

const (
	// ReturnUnknown represents an invalid or undefined return status.
	ReturnUnknown ReturnStatus = iota

	// ReturnPending is set when the customer opens the return.
	ReturnPending

	// ReturnApproved indicates the admin accepted the return request.
	ReturnApproved

	// ReturnReceived indicates the returned goods arrived back.
	ReturnReceived

	// ReturnRefunded indicates the refund was issued. Terminal.
	ReturnRefunded

	// ReturnRejected indicates the admin declined the return.
	ReturnRejected

	// ReturnCancelled indicates the return was called off. Terminal.
	ReturnCancelled
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnUnknown:   "UNKNOWN",
		ReturnPending:   "PENDING",
		ReturnApproved:  "APPROVED",
		ReturnReceived:  "RECEIVED",
		ReturnRefunded:  "REFUNDED",
		ReturnRejected:  "REJECTED",
		ReturnCancelled: "CANCELLED",
	}
}

// adminReturnStatuses is the closed set the admin may move a live return
// to. PENDING is excluded: it is only ever set by the opening customer.
func adminReturnStatuses() []ReturnStatus {
	return []ReturnStatus{
		ReturnApproved,
		ReturnReceived,
		ReturnRefunded,
		ReturnRejected,
		ReturnCancelled,
	}
}

// ReturnStatusFromString parses the persisted string form of a
// ReturnStatus.
func ReturnStatusFromString(s string) (ReturnStatus, error) {
	for status, str := range getReturnStatusStrings() {
		if status != ReturnUnknown && str == s {
			return status, nil
		}
	}
	return ReturnUnknown, errs.NewValueIsInvalidErrorWithCause("returnStatus",
		fmt.Errorf("%q is not a valid return status", s))
}

// Validate checks if the ReturnStatus is a member of the closed
// enumeration.
func (s ReturnStatus) Validate() error {
	if s <= ReturnUnknown || s > ReturnCancelled {
		return errs.NewValueIsInvalidErrorWithCause("returnStatus",
			fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

// String returns the persisted string form, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the return admits no further writes.
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnRefunded || s == ReturnCancelled
}

// ReturnMethod is how the customer hands the goods back.
type ReturnMethod int

const (
	// ReturnMethodUnknown represents an invalid or undefined method.
	ReturnMethodUnknown ReturnMethod = iota

	// ReturnMethodUPSStore means the customer drops the parcel at a UPS
	// store.
	ReturnMethodUPSStore

	// ReturnMethodInStore means the customer brings the goods back to
	// the store.
	ReturnMethodInStore
)

// ReturnMethodFromString parses the persisted string form of a
// ReturnMethod.
func ReturnMethodFromString(s string) (ReturnMethod, error) {
	switch s {
	case "UPS_STORE":
		return ReturnMethodUPSStore, nil
	case "IN_STORE":
		return ReturnMethodInStore, nil
	default:
		return ReturnMethodUnknown, errs.NewValueIsInvalidErrorWithCause("returnMethod",
			fmt.Errorf("%q is not a valid return method", s))
	}
}

// Validate checks if the ReturnMethod is UPS_STORE or IN_STORE.
func (m ReturnMethod) Validate() error {
	if m != ReturnMethodUPSStore && m != ReturnMethodInStore {
		return errs.NewValueIsInvalidErrorWithCause("returnMethod",
			fmt.Errorf("%d is not a valid return method", m))
	}
	return nil
}

// String returns the persisted string form, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (m ReturnMethod) String() string {
	switch m {
	case ReturnMethodUPSStore:
		return "UPS_STORE"
	case ReturnMethodInStore:
		return "IN_STORE"
	default:
		return "UNKNOWN"
	}
}

// ReturnRequest is the return sub-state embedded in a completed order.
// It records how and why the customer wants the order reversed and when
// the request was opened. The request is created in PENDING and advanced
// only through Advance, which enforces the admin-only set and the
// terminal rule.
type ReturnRequest struct {
	status      ReturnStatus
	method      ReturnMethod
	reason      string
	requestedAt time.Time

	isConstructed bool
}

// NewReturnRequest opens a return in PENDING with the customer's chosen
// method, a free-text reason, and the request timestamp.
func NewReturnRequest(method ReturnMethod, reason string, requestedAt time.Time) (*ReturnRequest, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReturnReasonIsRequired
	}

	return &ReturnRequest{
		status:        ReturnPending,
		method:        method,
		reason:        reason,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// RestoreReturnRequest reconstructs a return request from persistence
// without applying the opening rules.
func RestoreReturnRequest(status ReturnStatus, method ReturnMethod, reason string, requestedAt time.Time) (*ReturnRequest, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &ReturnRequest{
		status:        status,
		method:        method,
		reason:        reason,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// Status returns the current return status.
func (r *ReturnRequest) Status() ReturnStatus {
	return r.status
}

// Method returns the chosen return method.
func (r *ReturnRequest) Method() ReturnMethod {
	return r.method
}

// Reason returns the customer's free-text reason.
func (r *ReturnRequest) Reason() string {
	return r.reason
}

// RequestedAt returns when the return was opened.
func (r *ReturnRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// Validate ensures the request was created via a constructor.
func (r *ReturnRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnRequestIsNotConstructed
	}
	return nil
}

// Advance moves the return to target on behalf of the admin.
//
// Rules enforced:
//   - the current status must not be terminal (REFUNDED, CANCELLED)
//   - target must be in the admin set {APPROVED, RECEIVED, REFUNDED,
//     REJECTED, CANCELLED}; PENDING cannot be re-entered
//
// Returns an error and leaves the request unchanged when either rule is
// violated.
func (r *ReturnRequest) Advance(target ReturnStatus) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("returnStatus",
			fmt.Errorf("return is already %s and cannot change", r.status))
	}

	for _, allowed := range adminReturnStatuses() {
		if target == allowed {
			r.status = target
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("returnStatus",
		fmt.Errorf("%s is not a status the admin may set", target))
}
