package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSubmitRegistrationCommandIsNotConstructed = errors.New(
	"SubmitRegistrationCommand must be created via NewSubmitRegistrationCommand constructor",
)

// SubmitRegistrationCommand represents a prospective delivery employee
// applying for an account. The application waits in a queue until an
// admin decides it.
type SubmitRegistrationCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	name         string
	email        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewSubmitRegistrationCommand creates an employee application command.
func NewSubmitRegistrationCommand(
	requestID kernel.UUID,
	name string,
	email string,
	passwordHash string,
) (SubmitRegistrationCommand, error) {
	command := SubmitRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setName(name),
		command.setEmail(email),
		command.setPasswordHash(passwordHash),
	); err != nil {
		return SubmitRegistrationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRegistrationCommandIsNotConstructed)
}

// RequestID returns the identifier the new request will carry.
func (c SubmitRegistrationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Name returns the applicant's display name.
func (c SubmitRegistrationCommand) Name() string {
	return c.name
}

// Email returns the applicant's sign-in email.
func (c SubmitRegistrationCommand) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash to store with the application.
func (c SubmitRegistrationCommand) PasswordHash() string {
	return c.passwordHash
}

func (c *SubmitRegistrationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *SubmitRegistrationCommand) setName(name string) error {
	if name == "" {
		return account.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *SubmitRegistrationCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *SubmitRegistrationCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return account.ErrPasswordHashIsRequired
	}
	c.passwordHash = passwordHash
	return nil
}
