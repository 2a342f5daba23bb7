package account

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role determines what an authenticated principal may do. Capability
// checks are expressed as predicates on the role so callers never
// compare role strings directly.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer shops, cancels pending orders, and opens returns.
	RoleCustomer

	// RoleEmployee works assigned deliveries.
	RoleEmployee

	// RoleAdmin manages the catalog, order lifecycle, returns, and
	// employee onboarding.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleEmployee: "EMPLOYEE",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses the persisted string form of a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role is a member of the closed role set.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted string form, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanManageOrders reports whether the role may drive the order
// lifecycle and returns.
func (r Role) CanManageOrders() bool {
	return r == RoleAdmin
}

// CanWorkDeliveries reports whether the role may update delivery
// statuses.
func (r Role) CanWorkDeliveries() bool {
	return r == RoleEmployee
}

// CanShop reports whether the role may place orders, cancel pending
// ones, and open returns.
func (r Role) CanShop() bool {
	return r == RoleCustomer
}

// CanOnboardEmployees reports whether the role may approve or reject
// employee registration requests.
func (r Role) CanOnboardEmployees() bool {
	return r == RoleAdmin
}
