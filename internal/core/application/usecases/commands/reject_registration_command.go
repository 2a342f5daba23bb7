package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRejectRegistrationCommandIsNotConstructed = errors.New(
	"RejectRegistrationCommand must be created via NewRejectRegistrationCommand constructor",
)

// RejectRegistrationCommand represents the admin declining an employee
// application. The request is deleted; no account is created.
type RejectRegistrationCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectRegistrationCommand creates a command to reject a
// registration request.
func NewRejectRegistrationCommand(principal account.Principal, requestID kernel.UUID) (RejectRegistrationCommand, error) {
	command := RejectRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setRequestID(requestID),
	); err != nil {
		return RejectRegistrationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrRejectRegistrationCommandIsNotConstructed)
}

// Principal returns the acting admin.
func (c RejectRegistrationCommand) Principal() account.Principal {
	return c.principal
}

// RequestID returns the registration request to reject.
func (c RejectRegistrationCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *RejectRegistrationCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *RejectRegistrationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}
