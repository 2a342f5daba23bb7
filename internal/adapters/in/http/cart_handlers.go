package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartLine is one line of the cart with catalog details attached.
type CartLine struct {
	VariantID   uuid.UUID `json:"variantId"`
	ProductName string    `json:"productName"`
	Size        string    `json:"size"`
	Color       string    `json:"color"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Subtotal    float64   `json:"subtotal"`
	AddedAt     time.Time `json:"addedAt"`
}

// GetCart handles GET /api/v1/cart - retrieves the acting customer's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetCartQuery(principal)
	if err != nil {
		return fail(ctx, err)
	}

	lines, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]CartLine, len(lines))
	for i, line := range lines {
		response[i] = CartLine{
			VariantID:   line.VariantID.Bytes(),
			ProductName: line.ProductName,
			Size:        line.Size,
			Color:       line.Color,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
			AddedAt:     line.AddedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds a variant to the
// cart, merging quantities when the variant is already carted.
func (s *Server) AddCartItem(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request AddCartItemRequest
	if err := s.bind(ctx, &request); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	variantID, err := kernel.UUIDFromString(request.VariantID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(principal, variantID, request.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:variantId - removes
// one line from the cart.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	variantID, err := kernel.UUIDFromString(ctx.Param("variantId"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(principal, variantID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(principal)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
