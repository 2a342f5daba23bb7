package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/errs"
)

// SubmitRegistrationCommandHandler files an employee application into
// the onboarding queue.
type SubmitRegistrationCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSubmitRegistrationCommandHandler creates a handler for employee
// applications.
func NewSubmitRegistrationCommandHandler(uowFactory AccountUoWFactory) SubmitRegistrationCommandHandler {
	return SubmitRegistrationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application. Returns ErrEmailAlreadyTaken when
// the email already belongs to an account.
func (h SubmitRegistrationCommandHandler) Handle(ctx context.Context, command SubmitRegistrationCommand) error {
	if err := command.Validate(); err != nil {
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

	_, err := accountRepo.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("check email %s: %w", command.Email(), err)
	}

	request, err := account.NewRegistrationRequest(command.RequestID(), command.Name(),
		command.Email(), command.PasswordHash(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = accountRepo.AddRegistrationRequest(ctx, request); err != nil {
		return fmt.Errorf("add registration request %s: %w", request.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
