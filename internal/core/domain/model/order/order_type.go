package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled: picked up in store by the
// customer, or shipped to a delivery address by a delivery employee.
// The type is fixed at checkout and determines which optional order fields
// are required (address for DELIVERY, pickup time for PICKUP) and which
// branch of the admin transition table applies.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypePickup marks an order the customer collects in store.
	TypePickup

	// TypeDelivery marks an order shipped to the customer's address.
	TypeDelivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypePickup:   "PICKUP",
		TypeDelivery: "DELIVERY",
	}
}

// TypeFromString parses the persisted string form of a Type.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "PICKUP":
		return TypePickup, nil
	case "DELIVERY":
		return TypeDelivery, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid order type", s))
	}
}

// Validate checks if the Type is PICKUP or DELIVERY.
func (t Type) Validate() error {
	if t != TypePickup && t != TypeDelivery {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the persisted string form of the type, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
