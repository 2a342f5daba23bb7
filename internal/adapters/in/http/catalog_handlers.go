package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Variant is one purchasable option of a product.
type Variant struct {
	ID    uuid.UUID `json:"id"`
	Size  string    `json:"size"`
	Color string    `json:"color"`
	Price float64   `json:"price"`
	Stock int       `json:"stock"`
}

// Product is one catalog entry with its variants.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	Variants    []Variant `json:"variants"`
}

// GetCatalog handles GET /api/v1/catalog - retrieves the storefront
// catalog. The endpoint is public.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	products, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, product := range products {
		variants := make([]Variant, len(product.Variants))
		for j, variant := range product.Variants {
			variants[j] = Variant{
				ID:    variant.ID.Bytes(),
				Size:  variant.Size,
				Color: variant.Color,
				Price: variant.Price,
				Stock: variant.Stock,
			}
		}

		response[i] = Product{
			ID:          product.ID.Bytes(),
			Name:        product.Name,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			CreatedAt:   product.CreatedAt,
			Variants:    variants,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
