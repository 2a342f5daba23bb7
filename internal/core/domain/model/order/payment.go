package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was
// not created through a constructor.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the simulated payment record written alongside the order
// at checkout. No gateway is involved; the record exists so order
// history can show what was charged and how.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    float64
	method    string
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a validated payment record.
func NewPayment(id, orderID kernel.UUID, amount float64, method string, createdAt time.Time) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}
	if method == "" {
		return nil, errs.NewValueIsRequiredError("method")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(id, orderID kernel.UUID, amount float64, method string, createdAt time.Time) (*Payment, error) {
	return NewPayment(id, orderID, amount, method, createdAt)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the charged amount.
func (p *Payment) Amount() float64 { return p.amount }

// Method returns the payment method label the customer picked.
func (p *Payment) Method() string { return p.method }

// CreatedAt returns when the payment was recorded.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
