package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the customer's cart joined with the catalog
// for display names and current prices.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. Lines are returned oldest first, in the
// order the customer added them.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().MustShop(); err != nil {
		return nil, err
	}

	responses := make([]GetCartQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.variant_id,
			p.name,
			v.size,
			v.color,
			c.quantity,
			v.price,
			c.added_at
		FROM cart_items c
		JOIN variants v ON v.id = c.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE c.customer_id = ?
		ORDER BY c.added_at ASC
	`, query.Principal().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			variantID         uuid.UUID
			name, size, color string
			quantity          int
			price             float64
			addedAt           time.Time
		)

		err = rows.Scan(&variantID, &name, &size, &color, &quantity, &price, &addedAt)
		if err != nil {
			return nil, err
		}

		vID, idErr := kernel.UUIDFromBytes(variantID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetCartQueryResponse{
			VariantID:   vID,
			ProductName: name,
			Size:        size,
			Color:       color,
			Quantity:    quantity,
			UnitPrice:   price,
			Subtotal:    float64(quantity) * price,
			AddedAt:     addedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
