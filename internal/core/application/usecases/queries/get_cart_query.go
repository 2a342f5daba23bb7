package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the acting customer's cart lines enriched with
// the current catalog price of each variant.
type GetCartQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for the acting customer.
func NewGetCartQuery(principal account.Principal) (GetCartQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the acting customer.
func (q GetCartQuery) Principal() account.Principal {
	return q.principal
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartQueryResponse is one cart line. UnitPrice reflects the catalog
// price at read time; the price the customer actually pays is captured
// at checkout.
type GetCartQueryResponse struct {
	VariantID   kernel.UUID
	ProductName string
	Size        string
	Color       string
	Quantity    int
	UnitPrice   float64
	Subtotal    float64
	AddedAt     time.Time
}
