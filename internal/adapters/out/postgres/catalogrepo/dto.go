// Package catalogrepo provides data transfer objects and mapping functions
// for the product catalog.
package catalogrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog
// entries.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time

	Variants []VariantDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents one purchasable size and color combination of a
// product, carrying the price and stock.
type VariantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Size      string    `gorm:"type:varchar(16)"`
	Color     string    `gorm:"type:varchar(32)"`
	Price     float64
	Stock     int
}

// TableName specifies the database table name for variants.
func (VariantDTO) TableName() string {
	return "variants"
}

// productFromDomain converts a product to its database representation.
// Variants are persisted separately through AddVariant.
func productFromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		ImageURL:    aggregate.ImageURL(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// productToDomain converts a database DTO to a product.
func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, dto.ImageURL, dto.CreatedAt)
}

// variantFromDomain converts a variant to its database representation.
func variantFromDomain(variant *product.Variant) VariantDTO {
	return VariantDTO{
		ID:        variant.ID().Bytes(),
		ProductID: variant.ProductID().Bytes(),
		Size:      variant.Size(),
		Color:     variant.Color(),
		Price:     variant.Price(),
		Stock:     variant.Stock(),
	}
}

// variantToDomain converts a database DTO to a variant.
func variantToDomain(dto VariantDTO) (*product.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreVariant(id, productID, dto.Size, dto.Color, dto.Price, dto.Stock)
}
