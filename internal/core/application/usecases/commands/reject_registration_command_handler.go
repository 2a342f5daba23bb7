package commands

import (
	"context"
	"fmt"
)

// RejectRegistrationCommandHandler declines an employee application by
// deleting the request.
type RejectRegistrationCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRejectRegistrationCommandHandler creates a handler for
// registration rejection.
func NewRejectRegistrationCommandHandler(uowFactory AccountUoWFactory) RejectRegistrationCommandHandler {
	return RejectRegistrationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. The request must still exist.
func (h RejectRegistrationCommandHandler) Handle(ctx context.Context, command RejectRegistrationCommand) error {
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

	if err = accountRepo.RemoveRegistrationRequest(ctx, request.ID()); err != nil {
		return fmt.Errorf("remove registration request %s: %w", request.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
