package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents customer sign-up. The password
// arrives already bcrypt-hashed; plaintext never crosses the
// application boundary.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	name         string
	email        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a customer sign-up command.
func NewRegisterCustomerCommand(
	accountID kernel.UUID,
	name string,
	email string,
	passwordHash string,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setName(name),
		command.setEmail(email),
		command.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// AccountID returns the identifier the new account will carry.
func (c RegisterCustomerCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the sign-in email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash to store.
func (c RegisterCustomerCommand) PasswordHash() string {
	return c.passwordHash
}

func (c *RegisterCustomerCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return account.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return account.ErrPasswordHashIsRequired
	}
	c.passwordHash = passwordHash
	return nil
}
