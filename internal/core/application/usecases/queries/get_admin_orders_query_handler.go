package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAdminOrdersQueryHandler reads the full order book with one SQL
// statement, joining each order's delivery record and summing its lines
// for the total. The admin's allowed target statuses are computed per
// row from the same transition table the write path enforces.
type GetAdminOrdersQueryHandler struct {
	db       *gorm.DB
	resolver services.StatusResolver
}

// NewGetAdminOrdersQueryHandler creates a handler for the admin order
// dashboard.
func NewGetAdminOrdersQueryHandler(db *gorm.DB) GetAdminOrdersQueryHandler {
	return GetAdminOrdersQueryHandler{
		db:       db,
		resolver: services.NewStatusResolver(),
	}
}

// Handle executes the query. Orders are returned newest first.
func (h GetAdminOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAdminOrdersQuery,
) ([]GetAdminOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().MustManageOrders(); err != nil {
		return nil, err
	}

	responses := make([]GetAdminOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.order_type,
			o.status,
			o.return_status,
			o.return_reason,
			o.created_at,
			d.status AS delivery_status,
			COALESCE((
				SELECT SUM(i.quantity * i.unit_price)
				FROM order_items i
				WHERE i.order_id = o.id
			), 0) AS total
		FROM orders o
		LEFT JOIN deliveries d ON d.order_id = o.id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, customerID             uuid.UUID
			orderType, status          string
			returnStatus, returnReason *string
			createdAt                  time.Time
			deliveryStatus             *string
			total                      float64
		)

		err = rows.Scan(&id, &customerID, &orderType, &status,
			&returnStatus, &returnReason, &createdAt, &deliveryStatus, &total)
		if err != nil {
			return nil, err
		}

		resp, err := h.buildRow(id, customerID, orderType, status,
			returnStatus, returnReason, createdAt, deliveryStatus, total)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

func (h GetAdminOrdersQueryHandler) buildRow(
	id, customerID uuid.UUID,
	orderType, status string,
	returnStatus, returnReason *string,
	createdAt time.Time,
	deliveryStatus *string,
	total float64,
) (GetAdminOrdersQueryResponse, error) {
	var resp GetAdminOrdersQueryResponse

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return resp, err
	}

	parsedType, err := order.TypeFromString(orderType)
	if err != nil {
		return resp, err
	}

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return resp, err
	}

	var parsedDelivery *delivery.Status
	if deliveryStatus != nil {
		ds, dsErr := delivery.StatusFromString(*deliveryStatus)
		if dsErr != nil {
			return resp, dsErr
		}
		parsedDelivery = &ds
	}

	resp = GetAdminOrdersQueryResponse{
		ID:              orderID,
		CustomerID:      custID,
		Type:            parsedType,
		Status:          parsedStatus,
		AllowedStatuses: h.resolver.AllowedNextStatuses(parsedType, parsedStatus, parsedDelivery),
		Total:           total,
		CreatedAt:       createdAt,
		DeliveryStatus:  parsedDelivery,
	}

	if returnStatus != nil {
		rs, rsErr := order.ReturnStatusFromString(*returnStatus)
		if rsErr != nil {
			return resp, rsErr
		}
		resp.ReturnStatus = &rs
		resp.ReturnEditable = !rs.IsTerminal()
		if returnReason != nil {
			resp.ReturnReason = *returnReason
		}
	}

	return resp, nil
}
