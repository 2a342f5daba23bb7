package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetPendingRegistrationsQueryIsNotConstructed = errors.New(
	"GetPendingRegistrationsQuery must be created via NewGetPendingRegistrationsQuery constructor",
)

// GetPendingRegistrationsQuery retrieves the employee onboarding queue
// for the admin, oldest application first.
type GetPendingRegistrationsQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetPendingRegistrationsQuery creates a query for the onboarding
// queue.
func NewGetPendingRegistrationsQuery(principal account.Principal) (GetPendingRegistrationsQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetPendingRegistrationsQuery{}, err
	}

	return GetPendingRegistrationsQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the acting admin.
func (q GetPendingRegistrationsQuery) Principal() account.Principal {
	return q.principal
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRegistrationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRegistrationsQueryIsNotConstructed)
}

// GetPendingRegistrationsQueryResponse is one waiting application.
type GetPendingRegistrationsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	RequestedAt time.Time
}
