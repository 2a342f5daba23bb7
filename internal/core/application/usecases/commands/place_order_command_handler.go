package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when checkout runs against an empty cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// PlaceOrderCommandHandler executes checkout as one transaction: read
// the cart, reserve stock on every variant, create the pending order
// with prices captured from the catalog, write the payment record, and
// clear the cart. Any failure rolls the whole thing back.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for checkout.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Returns ErrCartIsEmpty when there is nothing to order and
// product.ErrInsufficientStock when any cart line exceeds the variant's
// remaining stock.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	customerID := command.Principal().ID()

	lines, err := cartRepo.GetAllForCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("get cart for customer %s: %w", customerID, err)
	}
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		variant, err := catalogRepo.GetVariant(ctx, line.VariantID())
		if err != nil {
			return fmt.Errorf("get variant %s: %w", line.VariantID(), err)
		}

		if err = variant.ReserveStock(line.Quantity()); err != nil {
			return err
		}
		if err = catalogRepo.UpdateVariant(ctx, variant); err != nil {
			return fmt.Errorf("update variant %s: %w", variant.ID(), err)
		}

		item, err := order.NewItem(variant.ID(), line.Quantity(), variant.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	now := time.Now().UTC()

	ord, err := order.NewOrder(command.OrderID(), customerID, command.OrderType(),
		items, command.Address(), command.PickupTime(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, ord); err != nil {
		return fmt.Errorf("add order %s: %w", ord.ID(), err)
	}

	payment, err := order.NewPayment(kernel.NewUUID(), ord.ID(), ord.Total(),
		command.PaymentMethod(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.AddPayment(ctx, payment); err != nil {
		return fmt.Errorf("add payment for order %s: %w", ord.ID(), err)
	}

	if err = cartRepo.RemoveAllForCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("clear cart for customer %s: %w", customerID, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
