package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a customer putting a variant into their
// cart. Adding a variant that is already carted merges the quantities.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	variantID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a variant to the cart.
func NewAddCartItemCommand(
	principal account.Principal,
	variantID kernel.UUID,
	quantity int,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setVariantID(variantID),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Principal returns the acting customer.
func (c AddCartItemCommand) Principal() account.Principal {
	return c.principal
}

// VariantID returns the variant to cart.
func (c AddCartItemCommand) VariantID() kernel.UUID {
	return c.variantID
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *AddCartItemCommand) setVariantID(variantID kernel.UUID) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	c.variantID = variantID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
