package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines.
type CartRepository interface {
	// Add persists a new cart line.
	Add(ctx context.Context, item *cart.CartItem) error

	// Update persists changes to an existing cart line.
	Update(ctx context.Context, item *cart.CartItem) error

	// GetByCustomerAndVariant retrieves the customer's line for a
	// variant. errs.ErrObjectNotFound when the variant is not carted.
	GetByCustomerAndVariant(ctx context.Context, customerID, variantID kernel.UUID) (*cart.CartItem, error)

	// GetAllForCustomer retrieves the customer's cart lines.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.CartItem, error)

	// Remove deletes a single cart line.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveAllForCustomer empties a customer's cart, typically at
	// checkout.
	RemoveAllForCustomer(ctx context.Context, customerID kernel.UUID) error

	// RemoveStale deletes lines last touched before the cutoff and
	// returns how many were removed.
	RemoveStale(ctx context.Context, cutoff time.Time) (int64, error)
}
