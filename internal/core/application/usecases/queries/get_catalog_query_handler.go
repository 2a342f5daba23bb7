package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads the catalog in two statements: products
// newest first, then every variant folded under its product.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetCatalogQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, image_url, created_at
		FROM products
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                      uuid.UUID
			name, description, url  string
			createdAt               time.Time
		)

		if err = rows.Scan(&id, &name, &description, &url, &createdAt); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(responses)
		responses = append(responses, GetCatalogQueryResponse{
			ID:          productID,
			Name:        name,
			Description: description,
			ImageURL:    url,
			CreatedAt:   createdAt,
			Variants:    make([]GetCatalogQueryVariant, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(responses) == 0 {
		return responses, nil
	}

	variantRows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, product_id, size, color, price, stock
		FROM variants
		ORDER BY size, color
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer variantRows.Close()

	for variantRows.Next() {
		var (
			id, productID uuid.UUID
			size, color   string
			price         float64
			stock         int
		)

		if err = variantRows.Scan(&id, &productID, &size, &color, &price, &stock); err != nil {
			return nil, err
		}

		pos, ok := index[productID]
		if !ok {
			continue
		}

		variantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		responses[pos].Variants = append(responses[pos].Variants, GetCatalogQueryVariant{
			ID:    variantID,
			Size:  size,
			Color: color,
			Price: price,
			Stock: stock,
		})
	}

	if err = variantRows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
