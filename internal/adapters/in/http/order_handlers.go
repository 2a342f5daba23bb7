package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderItem is one line of an order in the customer's history.
type OrderItem struct {
	VariantID uuid.UUID `json:"variantId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

// CustomerOrder is one order in the customer's history. Cancellable and
// Returnable tell the client which actions the order currently accepts.
type CustomerOrder struct {
	ID           uuid.UUID   `json:"id"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	PickupTime   *time.Time  `json:"pickupTime,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	Cancellable  bool        `json:"cancellable"`
	Returnable   bool        `json:"returnable"`
	ReturnStatus *string     `json:"returnStatus,omitempty"`
	ReturnReason string      `json:"returnReason,omitempty"`
}

// PlaceOrderResponse carries the server-assigned order ID back to the
// client.
type PlaceOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// PlaceOrder handles POST /api/v1/orders - checks out the acting
// customer's cart into a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request PlaceOrderRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	orderType, err := order.TypeFromString(request.Type)
	if err != nil {
		return fail(ctx, err)
	}

	var address *kernel.Address
	if request.Address != nil {
		parsed, err := kernel.NewAddress(
			request.Address.Street,
			request.Address.Apt,
			request.Address.City,
			request.Address.State,
			request.Address.Zipcode,
		)
		if err != nil {
			return fail(ctx, err)
		}
		address = &parsed
	}

	var pickupTime *time.Time
	if request.PickupTime != nil {
		utc := request.PickupTime.UTC()
		pickupTime = &utc
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		principal, orderID, orderType, address, pickupTime, request.PaymentMethod)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.Bytes()})
}

// GetCustomerOrders handles GET /api/v1/orders - lists the acting
// customer's order history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]CustomerOrder, len(orders))
	for i, o := range orders {
		items := make([]OrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItem{
				VariantID: item.VariantID.Bytes(),
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
		}

		var returnStatus *string
		if o.ReturnStatus != nil {
			status := o.ReturnStatus.String()
			returnStatus = &status
		}

		response[i] = CustomerOrder{
			ID:           o.ID.Bytes(),
			Type:         o.Type.String(),
			Status:       o.Status.String(),
			Items:        items,
			Total:        o.Total,
			PickupTime:   o.PickupTime,
			CreatedAt:    o.CreatedAt,
			Cancellable:  o.Cancellable,
			Returnable:   o.Returnable,
			ReturnStatus: returnStatus,
			ReturnReason: o.ReturnReason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels a
// pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(principal, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/v1/orders/:orderId/return - opens a
// return on a completed order.
func (s *Server) RequestReturn(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var request RequestReturnRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	method, err := order.ReturnMethodFromString(request.Method)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRequestReturnCommand(principal, orderID, method, request.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
