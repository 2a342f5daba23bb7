package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// ErrNotEmployeeAccount is returned when the assignment target resolves
// to an account that is not an employee.
var ErrNotEmployeeAccount = errors.New("account is not an employee")

// AssignDeliveryCommandHandler performs the dual-write at the heart of
// delivery fulfillment: create a pending Delivery for the chosen
// employee and move the order to ASSIGNED_TO_DELIVERY. Both writes
// happen in one transaction; if either fails the store rolls back and
// the order is untouched.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery
// assignment.
func NewAssignDeliveryCommandHandler(uowFactory OrderDeliveryUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Preconditions: the order is an ACCEPTED delivery order with no
// delivery record yet (services.ErrStatusNotAllowed otherwise), and the
// target id resolves to an employee account (errs.ErrObjectNotFound for
// a missing account, ErrNotEmployeeAccount for a wrong role).
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustManageOrders(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return fmt.Errorf("get order %s: %w", command.OrderID(), err)
	}

	existing, err := deliveryRepo.GetByOrder(ctx, command.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("get delivery for order %s: %w", command.OrderID(), err)
	}

	resolver := services.NewStatusResolver()
	if err = resolver.CanAssignDelivery(ord, existing); err != nil {
		return err
	}

	employee, err := uow.AccountRepository().Get(ctx, command.EmployeeID())
	if err != nil {
		return fmt.Errorf("get employee %s: %w", command.EmployeeID(), err)
	}
	if employee.Role() != account.RoleEmployee {
		return ErrNotEmployeeAccount
	}

	del, err := delivery.NewDelivery(kernel.NewUUID(), ord.ID(), command.EmployeeID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = ord.MoveStatusTo(order.StatusAssignedToDelivery); err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, del); err != nil {
		return fmt.Errorf("add delivery %s: %w", del.ID(), err)
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return fmt.Errorf("update order %s: %w", ord.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
