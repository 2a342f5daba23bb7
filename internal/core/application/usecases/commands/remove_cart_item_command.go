package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand drops one variant from the customer's cart.
// Lines are keyed by (customer, variant), so ownership is implicit in
// the lookup.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	variantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to drop a carted variant.
func NewRemoveCartItemCommand(principal account.Principal, variantID kernel.UUID) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setVariantID(variantID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// Principal returns the acting customer.
func (c RemoveCartItemCommand) Principal() account.Principal {
	return c.principal
}

// VariantID returns the variant to drop.
func (c RemoveCartItemCommand) VariantID() kernel.UUID {
	return c.variantID
}

func (c *RemoveCartItemCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *RemoveCartItemCommand) setVariantID(variantID kernel.UUID) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	c.variantID = variantID
	return nil
}
