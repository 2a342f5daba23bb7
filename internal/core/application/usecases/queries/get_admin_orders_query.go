// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read the database
// directly, returning purpose-built read models instead of aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetAdminOrdersQueryIsNotConstructed = errors.New(
	"GetAdminOrdersQuery must be created via NewGetAdminOrdersQuery constructor",
)

// GetAdminOrdersQuery retrieves every order in the store for the admin
// dashboard, each annotated with the set of statuses the admin may set
// next and the state of the order's return request.
//
// Example:
//
//	query, err := NewGetAdminOrdersQuery(principal)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Printf("%s %s -> %v\n", row.ID, row.Status, row.AllowedStatuses)
//	}
type GetAdminOrdersQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetAdminOrdersQuery creates a query for the admin order dashboard.
func NewGetAdminOrdersQuery(principal account.Principal) (GetAdminOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetAdminOrdersQuery{}, err
	}

	return GetAdminOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the acting admin.
func (q GetAdminOrdersQuery) Principal() account.Principal {
	return q.principal
}

// Validate ensures the query was created through the constructor.
func (q GetAdminOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminOrdersQueryIsNotConstructed)
}

// GetAdminOrdersQueryResponse is one row of the admin order dashboard.
// AllowedStatuses always contains the current status, so an empty
// difference means the order is frozen. DeliveryStatus is nil until a
// delivery has been assigned, ReturnStatus until a return is opened.
type GetAdminOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Type            order.Type
	Status          order.Status
	AllowedStatuses []order.Status
	Total           float64
	CreatedAt       time.Time

	DeliveryStatus *delivery.Status

	ReturnStatus   *order.ReturnStatus
	ReturnReason   string
	ReturnEditable bool
}
