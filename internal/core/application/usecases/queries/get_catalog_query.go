package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the storefront catalog: every product with
// its purchasable variants. The catalog is public, so the query carries
// no principal.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryVariant is one purchasable size and color combination.
type GetCatalogQueryVariant struct {
	ID    kernel.UUID
	Size  string
	Color string
	Price float64
	Stock int
}

// GetCatalogQueryResponse is one product with its variants.
type GetCatalogQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	Variants    []GetCatalogQueryVariant
}
