package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEmployeeDeliveriesQueryHandler reads the employee's assignments
// joined with the order's shipping address.
type GetEmployeeDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeeDeliveriesQueryHandler creates a handler for the
// employee delivery worklist.
func NewGetEmployeeDeliveriesQueryHandler(db *gorm.DB) GetEmployeeDeliveriesQueryHandler {
	return GetEmployeeDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Assignments are returned newest first.
func (h GetEmployeeDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeeDeliveriesQuery,
) ([]GetEmployeeDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().MustWorkDeliveries(); err != nil {
		return nil, err
	}

	responses := make([]GetEmployeeDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.status,
			d.created_at,
			o.address_street,
			o.address_apt,
			o.address_city,
			o.address_state,
			o.address_zipcode
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.delivery_person_id = ?
		ORDER BY d.created_at DESC
	`, query.Principal().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID                       uuid.UUID
			status                            string
			createdAt                         time.Time
			street, apt, city, state, zipcode *string
		)

		err = rows.Scan(&id, &orderID, &status, &createdAt,
			&street, &apt, &city, &state, &zipcode)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ordID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		parsedStatus, statusErr := delivery.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp := GetEmployeeDeliveriesQueryResponse{
			ID:          deliveryID,
			OrderID:     ordID,
			Status:      parsedStatus,
			AllowedNext: parsedStatus.AllowedNext(),
			CreatedAt:   createdAt,
		}

		if street != nil {
			address, addrErr := kernel.NewAddress(*street, strValue(apt),
				strValue(city), strValue(state), strValue(zipcode))
			if addrErr != nil {
				return nil, addrErr
			}
			resp.Address = address.String()
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
