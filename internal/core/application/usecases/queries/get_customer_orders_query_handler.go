package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads the acting customer's orders and
// their lines from the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for the customer
// order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with
// their lines in variant order.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().MustShop(); err != nil {
		return nil, err
	}

	responses := make([]GetCustomerOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			pickup_time,
			return_status,
			return_reason,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.Principal().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                         uuid.UUID
			orderType, status          string
			pickupTime                 *time.Time
			returnStatus, returnReason *string
			createdAt                  time.Time
		)

		err = rows.Scan(&id, &orderType, &status, &pickupTime,
			&returnStatus, &returnReason, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parsedType, typeErr := order.TypeFromString(orderType)
		if typeErr != nil {
			return nil, typeErr
		}

		parsedStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp := GetCustomerOrdersQueryResponse{
			ID:          orderID,
			Type:        parsedType,
			Status:      parsedStatus,
			Items:       make([]GetCustomerOrdersQueryItem, 0),
			PickupTime:  pickupTime,
			CreatedAt:   createdAt,
			Cancellable: parsedStatus == order.StatusPending,
			Returnable:  parsedStatus == order.StatusCompleted && returnStatus == nil,
		}

		if returnStatus != nil {
			rs, rsErr := order.ReturnStatusFromString(*returnStatus)
			if rsErr != nil {
				return nil, rsErr
			}
			resp.ReturnStatus = &rs
			if returnReason != nil {
				resp.ReturnReason = *returnReason
			}
		}

		index[id] = len(responses)
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, query.Principal().ID(), index, responses); err != nil {
		return nil, err
	}

	return responses, nil
}

// attachItems loads the lines of every fetched order in one statement
// and folds them into the responses, accumulating totals.
func (h GetCustomerOrdersQueryHandler) attachItems(
	ctx context.Context,
	customerID kernel.UUID,
	index map[uuid.UUID]int,
	responses []GetCustomerOrdersQueryResponse,
) error {
	if len(responses) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.order_id, i.variant_id, i.quantity, i.unit_price
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.customer_id = ?
		ORDER BY i.variant_id
	`, customerID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, variantID uuid.UUID
			quantity           int
			unitPrice          float64
		)

		if err = rows.Scan(&orderID, &variantID, &quantity, &unitPrice); err != nil {
			return err
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}

		vID, idErr := kernel.UUIDFromBytes(variantID[:])
		if idErr != nil {
			return idErr
		}

		responses[pos].Items = append(responses[pos].Items, GetCustomerOrdersQueryItem{
			VariantID: vID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		responses[pos].Total += float64(quantity) * unitPrice
	}

	return rows.Err()
}
