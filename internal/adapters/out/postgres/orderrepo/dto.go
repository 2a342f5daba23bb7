// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The fulfillment address and the return request are both optional and stored
// as nullable column groups on the same row; order lines live in their own
// table and are loaded with the order.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	OrderType  string    `gorm:"type:varchar(16)"`
	Status     string    `gorm:"type:varchar(32);index"`

	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	PickupTime *time.Time

	ReturnStatus      *string `gorm:"type:varchar(16)"`
	ReturnMethod      *string `gorm:"type:varchar(16)"`
	ReturnReason      *string
	ReturnRequestedAt *time.Time

	Version   int64
	CreatedAt time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address columns. All fields are
// nullable; a NULL street means the order has no address.
type AddressDTO struct {
	Street  *string
	Apt     *string
	City    *string
	State   *string
	Zipcode *string
}

// ItemDTO represents one order line. An order carries at most one line per
// variant, so the pair forms the key.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents the payment record written with the order at checkout.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64
	Method    string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		OrderType:  aggregate.Type().String(),
		Status:     aggregate.Status().String(),
		PickupTime: aggregate.PickupTime(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if address := aggregate.Address(); address != nil {
		street, apt := address.Street(), address.Apt()
		city, state, zipcode := address.City(), address.State(), address.Zipcode()
		dto.Address = AddressDTO{
			Street:  &street,
			Apt:     &apt,
			City:    &city,
			State:   &state,
			Zipcode: &zipcode,
		}
	}

	if request := aggregate.Return(); request != nil {
		status, method := request.Status().String(), request.Method().String()
		reason, requestedAt := request.Reason(), request.RequestedAt()
		dto.ReturnStatus = &status
		dto.ReturnMethod = &method
		dto.ReturnReason = &reason
		dto.ReturnRequestedAt = &requestedAt
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			VariantID: item.VariantID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, reassembling the optional address and return request.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		variantID, itemErr := kernel.UUIDFromBytes(itemDTO.VariantID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(variantID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var address *kernel.Address
	if dto.Address.Street != nil {
		restored, addrErr := kernel.NewAddress(
			*dto.Address.Street,
			deref(dto.Address.Apt),
			deref(dto.Address.City),
			deref(dto.Address.State),
			deref(dto.Address.Zipcode),
		)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &restored
	}

	var returnRequest *order.ReturnRequest
	if dto.ReturnStatus != nil {
		returnStatus, retErr := order.ReturnStatusFromString(*dto.ReturnStatus)
		if retErr != nil {
			return nil, retErr
		}

		returnMethod, retErr := order.ReturnMethodFromString(deref(dto.ReturnMethod))
		if retErr != nil {
			return nil, retErr
		}

		var requestedAt time.Time
		if dto.ReturnRequestedAt != nil {
			requestedAt = *dto.ReturnRequestedAt
		}

		returnRequest, retErr = order.RestoreReturnRequest(returnStatus, returnMethod,
			deref(dto.ReturnReason), requestedAt)
		if retErr != nil {
			return nil, retErr
		}
	}

	return order.RestoreOrder(id, customerID, orderType, status, items,
		address, dto.PickupTime, returnRequest, dto.Version, dto.CreatedAt)
}

// paymentFromDomain converts a payment record to its database representation.
func paymentFromDomain(payment *order.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        payment.ID().Bytes(),
		OrderID:   payment.OrderID().Bytes(),
		Amount:    payment.Amount(),
		Method:    payment.Method(),
		CreatedAt: payment.CreatedAt(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
