package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// CatalogRepository defines the persistence contract for the product
// catalog. Variants carry the stock, so checkout updates go through
// UpdateVariant.
type CatalogRepository interface {
	// AddProduct persists a new catalog entry.
	AddProduct(ctx context.Context, aggregate *product.Product) error

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllProducts retrieves the whole catalog, newest first.
	GetAllProducts(ctx context.Context) ([]*product.Product, error)

	// AddVariant persists a new variant of a product.
	AddVariant(ctx context.Context, variant *product.Variant) error

	// GetVariant retrieves a variant by its unique identifier.
	GetVariant(ctx context.Context, id kernel.UUID) (*product.Variant, error)

	// GetVariantsForProduct retrieves a product's variants.
	GetVariantsForProduct(ctx context.Context, productID kernel.UUID) ([]*product.Variant, error)

	// UpdateVariant persists stock and price changes to a variant.
	UpdateVariant(ctx context.Context, variant *product.Variant) error
}
