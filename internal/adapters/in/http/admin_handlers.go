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

// AdminOrder is one row of the admin order dashboard. AllowedStatuses
// lists every status the order may be moved to, including its current
// one.
type AdminOrder struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customerId"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	AllowedStatuses []string  `json:"allowedStatuses"`
	Total           float64   `json:"total"`
	CreatedAt       time.Time `json:"createdAt"`
	DeliveryStatus  *string   `json:"deliveryStatus,omitempty"`
	ReturnStatus    *string   `json:"returnStatus,omitempty"`
	ReturnReason    string    `json:"returnReason,omitempty"`
	ReturnEditable  bool      `json:"returnEditable"`
}

// PendingRegistration is one employee application awaiting review.
type PendingRegistration struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requestedAt"`
}

// GetAdminOrders handles GET /api/v1/admin/orders - the full order
// dashboard, newest first.
func (s *Server) GetAdminOrders(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetAdminOrdersQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getAdminOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]AdminOrder, len(orders))
	for i, o := range orders {
		allowed := make([]string, len(o.AllowedStatuses))
		for j, status := range o.AllowedStatuses {
			allowed[j] = status.String()
		}

		var deliveryStatus *string
		if o.DeliveryStatus != nil {
			status := o.DeliveryStatus.String()
			deliveryStatus = &status
		}

		var returnStatus *string
		if o.ReturnStatus != nil {
			status := o.ReturnStatus.String()
			returnStatus = &status
		}

		response[i] = AdminOrder{
			ID:              o.ID.Bytes(),
			CustomerID:      o.CustomerID.Bytes(),
			Type:            o.Type.String(),
			Status:          o.Status.String(),
			AllowedStatuses: allowed,
			Total:           o.Total,
			CreatedAt:       o.CreatedAt,
			DeliveryStatus:  deliveryStatus,
			ReturnStatus:    returnStatus,
			ReturnReason:    o.ReturnReason,
			ReturnEditable:  o.ReturnEditable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/admin/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(principal, orderID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/admin/orders/:orderId/delivery -
// hands an accepted delivery order to an employee.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var request AssignDeliveryRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(principal, orderID, employeeID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateReturnStatus handles PUT /api/v1/admin/orders/:orderId/return-status.
func (s *Server) UpdateReturnStatus(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var request UpdateReturnStatusRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	target, err := order.ReturnStatusFromString(request.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(principal, orderID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateReturnStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingRegistrations handles GET /api/v1/admin/registrations -
// lists employee applications awaiting review, oldest first.
func (s *Server) GetPendingRegistrations(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetPendingRegistrationsQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	registrations, err := s.getPendingRegistrationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]PendingRegistration, len(registrations))
	for i, r := range registrations {
		response[i] = PendingRegistration{
			ID:          r.ID.Bytes(),
			Name:        r.Name,
			Email:       r.Email,
			RequestedAt: r.RequestedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveRegistration handles POST /api/v1/admin/registrations/:requestId/approve.
func (s *Server) ApproveRegistration(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewApproveRegistrationCommand(principal, requestID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.approveRegistrationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectRegistration handles POST /api/v1/admin/registrations/:requestId/reject.
func (s *Server) RejectRegistration(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRejectRegistrationCommand(principal, requestID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.rejectRegistrationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
