package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetEmployeeDeliveriesQueryIsNotConstructed = errors.New(
	"GetEmployeeDeliveriesQuery must be created via NewGetEmployeeDeliveriesQuery constructor",
)

// GetEmployeeDeliveriesQuery retrieves the acting employee's delivery
// assignments with the shipping address and the statuses the employee
// may report next.
type GetEmployeeDeliveriesQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetEmployeeDeliveriesQuery creates a query for the employee's
// delivery worklist. Employees only see their own assignments.
func NewGetEmployeeDeliveriesQuery(principal account.Principal) (GetEmployeeDeliveriesQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetEmployeeDeliveriesQuery{}, err
	}

	return GetEmployeeDeliveriesQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the acting employee.
func (q GetEmployeeDeliveriesQuery) Principal() account.Principal {
	return q.principal
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeDeliveriesQueryIsNotConstructed)
}

// GetEmployeeDeliveriesQueryResponse is one delivery assignment in the
// employee's worklist. AllowedNext includes the current status, which
// terminal deliveries report as their only member.
type GetEmployeeDeliveriesQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Status      delivery.Status
	AllowedNext []delivery.Status
	Address     string
	CreatedAt   time.Time
}
