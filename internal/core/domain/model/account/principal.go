package account

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// Authorization errors raised when a principal lacks the capability a
// mutation requires.
var (
	// ErrPrincipalIsNotConstructed is returned when a Principal was not
	// created via NewPrincipal.
	ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")
	// ErrRoleNotAllowed is returned when the principal's role lacks the
	// required capability.
	ErrRoleNotAllowed = errors.New("role is not allowed to perform this operation")
)

// Principal is the authenticated actor behind a request: an account id
// and its role. Every mutation entry point takes one explicitly and
// checks the required capability before touching state.
type Principal struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewPrincipal creates a validated principal.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the acting account's identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the acting account's role.
func (p Principal) Role() Role {
	return p.role
}

// MustManageOrders fails unless the principal may drive the order
// lifecycle.
func (p Principal) MustManageOrders() error {
	if !p.role.CanManageOrders() {
		return ErrRoleNotAllowed
	}
	return nil
}

// MustWorkDeliveries fails unless the principal may update delivery
// statuses.
func (p Principal) MustWorkDeliveries() error {
	if !p.role.CanWorkDeliveries() {
		return ErrRoleNotAllowed
	}
	return nil
}

// MustShop fails unless the principal is a customer.
func (p Principal) MustShop() error {
	if !p.role.CanShop() {
		return ErrRoleNotAllowed
	}
	return nil
}

// MustOnboardEmployees fails unless the principal may decide employee
// registrations.
func (p Principal) MustOnboardEmployees() error {
	if !p.role.CanOnboardEmployees() {
		return ErrRoleNotAllowed
	}
	return nil
}
