package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the acting customer's order history
// with lines, flags for the actions currently open to the customer, and
// the state of any return.
type GetCustomerOrdersQuery struct {
	principal account.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the customer's order
// history. The customer is taken from the principal; customers can only
// see their own orders.
func NewGetCustomerOrdersQuery(principal account.Principal) (GetCustomerOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Principal returns the acting customer.
func (q GetCustomerOrdersQuery) Principal() account.Principal {
	return q.principal
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryItem is one line of an order in the history.
type GetCustomerOrdersQueryItem struct {
	VariantID kernel.UUID
	Quantity  int
	UnitPrice float64
}

// GetCustomerOrdersQueryResponse is one order in the customer's history.
// Cancellable is true only while the order is PENDING; Returnable is
// true for a COMPLETED order with no return opened yet.
type GetCustomerOrdersQueryResponse struct {
	ID         kernel.UUID
	Type       order.Type
	Status     order.Status
	Items      []GetCustomerOrdersQueryItem
	Total      float64
	PickupTime *time.Time
	CreatedAt  time.Time

	Cancellable bool
	Returnable  bool

	ReturnStatus *order.ReturnStatus
	ReturnReason string
}
