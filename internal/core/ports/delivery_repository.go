package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Update follows the same version compare-and-swap rule as
// OrderRepository.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate,
	// guarded by the aggregate's version.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery for an order. An order has at
	// most one; errs.ErrObjectNotFound is returned when none exists.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllForEmployee retrieves the deliveries assigned to an
	// employee, newest first.
	GetAllForEmployee(ctx context.Context, employeeID kernel.UUID) ([]*delivery.Delivery, error)
}
