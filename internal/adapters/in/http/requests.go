package http

import "time"

// Request bodies for the JSON API. Validation tags are enforced with
// go-playground/validator before a request reaches a command handler.

// SignUpRequest creates a customer account.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInRequest exchanges credentials for a bearer token.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterEmployeeRequest files an employee application for admin review.
type RegisterEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AddCartItemRequest adds a variant to the cart or merges quantities.
type AddCartItemRequest struct {
	VariantID string `json:"variantId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// AddressRequest is the shipping address of a delivery order.
type AddressRequest struct {
	Street  string `json:"street" validate:"required"`
	Apt     string `json:"apt"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zipcode string `json:"zipcode" validate:"required"`
}

// PlaceOrderRequest checks out the cart. Address is required for
// DELIVERY orders, pickupTime is optional for PICKUP orders.
type PlaceOrderRequest struct {
	Type          string          `json:"type" validate:"required,oneof=DELIVERY PICKUP"`
	Address       *AddressRequest `json:"address" validate:"omitempty"`
	PickupTime    *time.Time      `json:"pickupTime"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=CARD"`
}

// RequestReturnRequest opens a return on a completed order.
type RequestReturnRequest struct {
	Method string `json:"method" validate:"required,oneof=UPS_STORE IN_STORE"`
	Reason string `json:"reason" validate:"required,max=512"`
}

// UpdateOrderStatusRequest sets an order's status on the admin dashboard.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignDeliveryRequest hands an accepted delivery order to an employee.
type AssignDeliveryRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
}

// UpdateReturnStatusRequest advances an open return request.
type UpdateReturnStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateDeliveryStatusRequest advances a delivery assignment.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
