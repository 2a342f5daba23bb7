package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction, so multi-aggregate writes (assigning a delivery both
// creates the delivery and flips the order status) commit or roll back
// as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// DeliveryRepository returns a DeliveryRepository bound to the
	// current transaction.
	DeliveryRepository() DeliveryRepository

	// AccountRepository returns an AccountRepository bound to the
	// current transaction.
	AccountRepository() AccountRepository

	// CartRepository returns a CartRepository bound to the current
	// transaction.
	CartRepository() CartRepository

	// CatalogRepository returns a CatalogRepository bound to the
	// current transaction.
	CatalogRepository() CatalogRepository
}
