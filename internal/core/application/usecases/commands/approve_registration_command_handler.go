package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ApproveRegistrationCommandHandler turns an employee application into
// an employee account. Account creation and request deletion commit
// together or not at all.
type ApproveRegistrationCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewApproveRegistrationCommandHandler creates a handler for
// registration approval.
func NewApproveRegistrationCommandHandler(uowFactory AccountUoWFactory) ApproveRegistrationCommandHandler {
	return ApproveRegistrationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval.
// Returns errs.ErrObjectNotFound when the request no longer exists,
// which covers a racing second decision on the same application.
func (h ApproveRegistrationCommandHandler) Handle(ctx context.Context, command ApproveRegistrationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Principal().MustOnboardEmployees(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	request, err := accountRepo.GetRegistrationRequest(ctx, command.RequestID())
	if err != nil {
		return fmt.Errorf("get registration request %s: %w", command.RequestID(), err)
	}

	employee, err := request.ToEmployee(kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, employee); err != nil {
		return fmt.Errorf("add employee account %s: %w", employee.ID(), err)
	}

	if err = accountRepo.RemoveRegistrationRequest(ctx, request.ID()); err != nil {
		return fmt.Errorf("remove registration request %s: %w", request.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
