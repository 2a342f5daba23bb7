// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The order id carries a unique index because an order has at
// most one delivery record.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"type:varchar(16);index"`
	Version          int64
	CreatedAt        time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DeliveryPersonID: aggregate.DeliveryPersonID().Bytes(),
		Status:           aggregate.Status().String(),
		Version:          aggregate.Version(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	deliveryPersonID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, deliveryPersonID, status,
		dto.Version, dto.CreatedAt)
}
