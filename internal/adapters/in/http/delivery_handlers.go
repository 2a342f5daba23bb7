package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EmployeeDelivery is one delivery assignment in an employee's worklist.
type EmployeeDelivery struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"orderId"`
	Status      string    `json:"status"`
	AllowedNext []string  `json:"allowedNext"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GetEmployeeDeliveries handles GET /api/v1/deliveries - lists the
// acting employee's delivery assignments, newest first.
func (s *Server) GetEmployeeDeliveries(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetEmployeeDeliveriesQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	deliveries, err := s.getEmployeeDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]EmployeeDelivery, len(deliveries))
	for i, d := range deliveries {
		allowed := make([]string, len(d.AllowedNext))
		for j, status := range d.AllowedNext {
			allowed[j] = status.String()
		}

		response[i] = EmployeeDelivery{
			ID:          d.ID.Bytes(),
			OrderID:     d.OrderID.Bytes(),
			Status:      d.Status.String(),
			AllowedNext: allowed,
			Address:     d.Address,
			CreatedAt:   d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:deliveryId/status -
// advances a delivery assignment.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return fail(ctx, err)
	}

	var request UpdateDeliveryStatusRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	target, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(principal, deliveryID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
