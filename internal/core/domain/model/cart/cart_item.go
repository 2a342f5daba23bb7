// Package cart models the customer's shopping cart as individual line
// items keyed by customer and variant.
package cart

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCartItemIsNotConstructed is returned when a CartItem instance was
// not created through a constructor.
var ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem or RestoreCartItem")

// CartItem is one variant in a customer's cart. AddedAt drives the
// stale-cart cleanup job.
type CartItem struct {
	id         kernel.UUID
	customerID kernel.UUID
	variantID  kernel.UUID
	quantity   int
	addedAt    time.Time

	isConstructed bool
}

// NewCartItem creates a validated cart line.
func NewCartItem(id, customerID, variantID kernel.UUID, quantity int, addedAt time.Time) (*CartItem, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), variantID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &CartItem{
		id:            id,
		customerID:    customerID,
		variantID:     variantID,
		quantity:      quantity,
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

// RestoreCartItem reconstructs a cart line from persistence.
func RestoreCartItem(id, customerID, variantID kernel.UUID, quantity int, addedAt time.Time) (*CartItem, error) {
	return NewCartItem(id, customerID, variantID, quantity, addedAt)
}

// Validate ensures the CartItem was created through a constructor.
func (c *CartItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartItemIsNotConstructed
	}
	return nil
}

// ID returns the cart line's unique identifier.
func (c *CartItem) ID() kernel.UUID { return c.id }

// CustomerID returns the owning customer's identifier.
func (c *CartItem) CustomerID() kernel.UUID { return c.customerID }

// VariantID returns the carted variant's identifier.
func (c *CartItem) VariantID() kernel.UUID { return c.variantID }

// Quantity returns the carted quantity.
func (c *CartItem) Quantity() int { return c.quantity }

// AddedAt returns when the line was last touched.
func (c *CartItem) AddedAt() time.Time { return c.addedAt }

// MergeQuantity folds another add of the same variant into this line
// and refreshes the staleness clock.
func (c *CartItem) MergeQuantity(quantity int, at time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity += quantity
	c.addedAt = at
	return nil
}

// IsStale reports whether the line was last touched before the cutoff.
func (c *CartItem) IsStale(cutoff time.Time) bool {
	return c.addedAt.Before(cutoff)
}
