package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the acting customer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the cart.
func NewClearCartCommand(principal account.Principal) (ClearCartCommand, error) {
	if err := principal.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Principal returns the acting customer.
func (c ClearCartCommand) Principal() account.Principal {
	return c.principal
}
