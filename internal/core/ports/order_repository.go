package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update applies compare-and-swap semantics: the write succeeds only
// when the stored row still carries the aggregate's loaded version, and
// fails with errs.ErrVersionConflict otherwise.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded
	// by the aggregate's version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its return sub-state when present.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForCustomer retrieves a customer's orders, newest first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// AddPayment persists the payment record written with the order at
	// checkout.
	AddPayment(ctx context.Context, payment *order.Payment) error
}
