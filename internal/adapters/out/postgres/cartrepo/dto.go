// Package cartrepo provides data transfer objects and mapping functions for
// cart line persistence.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one cart line. A customer carries at most one
// line per variant, enforced by the composite unique index.
type CartItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_customer_variant"`
	VariantID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_customer_variant"`
	Quantity   int
	AddedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart line to its database representation.
func fromDomain(item *cart.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:         item.ID().Bytes(),
		CustomerID: item.CustomerID().Bytes(),
		VariantID:  item.VariantID().Bytes(),
		Quantity:   item.Quantity(),
		AddedAt:    item.AddedAt(),
	}
}

// toDomain converts a database DTO to a cart line.
func toDomain(dto CartItemDTO) (*cart.CartItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreCartItem(id, customerID, variantID, dto.Quantity, dto.AddedAt)
}
