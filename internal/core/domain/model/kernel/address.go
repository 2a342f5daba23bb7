package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// Domain errors for address construction.
var (
	// ErrStreetIsRequired is returned when an address has no street line.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrCityIsRequired is returned when an address has no city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrStateIsRequired is returned when an address has no state.
	ErrStateIsRequired = errs.NewValueIsRequiredError("state")
	// ErrZipcodeIsRequired is returned when an address has no zipcode.
	ErrZipcodeIsRequired = errs.NewValueIsRequiredError("zipcode")
	// ErrAddressIsNotConstructed is returned when using a zero-value Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is a value object holding the postal address a DELIVERY order is
// shipped to. The apartment line is optional; street, city, state, and
// zipcode are required.
//
// Address is immutable: all fields are set at construction and exposed
// through read accessors.
//
// Example:
//
//	addr, err := kernel.NewAddress("101 Customer Drive", "Apt 4", "San Francisco", "CA", "94105")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct {
	street  string
	apt     string
	city    string
	state   string
	zipcode string

	isSet bool
}

// NewAddress creates a validated Address. Street, city, state, and zipcode
// must be non-empty; apt may be empty.
func NewAddress(street, apt, city, state, zipcode string) (Address, error) {
	if street == "" {
		return Address{}, ErrStreetIsRequired
	}
	if city == "" {
		return Address{}, ErrCityIsRequired
	}
	if state == "" {
		return Address{}, ErrStateIsRequired
	}
	if zipcode == "" {
		return Address{}, ErrZipcodeIsRequired
	}

	return Address{
		street:  street,
		apt:     apt,
		city:    city,
		state:   state,
		zipcode: zipcode,
		isSet:   true,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// Apt returns the optional apartment line. Empty when not provided.
func (a Address) Apt() string {
	return a.apt
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state.
func (a Address) State() string {
	return a.state
}

// Zipcode returns the zipcode.
func (a Address) Zipcode() string {
	return a.zipcode
}

// IsEqual reports whether two addresses have identical fields.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.apt == other.apt &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipcode == other.zipcode
}

// String formats the address as a single display line.
func (a Address) String() string {
	if a.apt == "" {
		return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.state, a.zipcode)
	}
	return fmt.Sprintf("%s, %s, %s, %s, %s", a.street, a.apt, a.city, a.state, a.zipcode)
}

// Validate checks that the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for a zero value.
func (a Address) Validate() error {
	if !a.isSet {
		return ErrAddressIsNotConstructed
	}
	return nil
}
