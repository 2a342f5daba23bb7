package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/pkg/errs"
)

// ErrEmailAlreadyTaken is returned when a sign-up or application reuses
// an email an account already holds.
var ErrEmailAlreadyTaken = errors.New("email is already taken")

// RegisterCustomerCommandHandler creates a customer account at sign-up.
type RegisterCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// sign-up.
func NewRegisterCustomerCommandHandler(uowFactory AccountUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up. Returns ErrEmailAlreadyTaken when the
// email resolves to an existing account.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, command RegisterCustomerCommand) error {
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

	customer, err := account.NewAccount(command.AccountID(), account.RoleCustomer,
		command.Name(), command.Email(), command.PasswordHash(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, customer); err != nil {
		return fmt.Errorf("add customer account %s: %w", customer.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
