// Package guard provides a small defensive-programming helper that ensures
// value objects, commands, and queries are only created through their
// designated constructor functions.
//
// Embedding a ConstructorGuard in a struct makes it possible to distinguish
// a properly constructed instance from a zero value: the guard's internal
// flag is only set by NewConstructorGuard, so a zero-value struct fails
// validation with a descriptive error.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is invalid and fails Validate.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(customerID kernel.UUID) (PlaceOrderCommand, error) {
//	    if err := customerID.Validate(); err != nil {
//	        return PlaceOrderCommand{}, err
//	    }
//	    return PlaceOrderCommand{
//	        customerID: customerID,
//	        guard:      guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard with the constructed flag set.
// Call it from the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
