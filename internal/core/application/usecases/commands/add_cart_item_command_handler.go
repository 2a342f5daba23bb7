package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler adds a variant to the customer's cart.
// The requested quantity (plus whatever is already carted) is checked
// against the variant's stock at add time only; stock is not reserved
// until checkout.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition.
// Returns product.ErrInsufficientStock when the combined carted
// quantity would exceed the variant's stock.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustShop(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	catalogRepo := uow.CatalogRepository()

	customerID := command.Principal().ID()

	variant, err := catalogRepo.GetVariant(ctx, command.VariantID())
	if err != nil {
		return fmt.Errorf("get variant %s: %w", command.VariantID(), err)
	}

	existing, err := cartRepo.GetByCustomerAndVariant(ctx, customerID, command.VariantID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("get cart line: %w", err)
	}

	carted := 0
	if existing != nil {
		carted = existing.Quantity()
	}
	if carted+command.Quantity() > variant.Stock() {
		return fmt.Errorf("%w: %d requested, %d available",
			product.ErrInsufficientStock, carted+command.Quantity(), variant.Stock())
	}

	now := time.Now().UTC()

	if existing != nil {
		if err = existing.MergeQuantity(command.Quantity(), now); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("update cart line %s: %w", existing.ID(), err)
		}
	} else {
		line, err := cart.NewCartItem(kernel.NewUUID(), customerID, command.VariantID(),
			command.Quantity(), now)
		if err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, line); err != nil {
			return fmt.Errorf("add cart line %s: %w", line.ID(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
