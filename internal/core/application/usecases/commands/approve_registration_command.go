package commands

import (
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrApproveRegistrationCommandIsNotConstructed = errors.New(
	"ApproveRegistrationCommand must be created via NewApproveRegistrationCommand constructor",
)

// ApproveRegistrationCommand represents the admin accepting an employee
// application. Handling it creates the employee account and deletes the
// request in one transaction.
type ApproveRegistrationCommand struct { //nolint:recvcheck //using for validation
	principal account.Principal
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRegistrationCommand creates a command to approve a
// registration request.
func NewApproveRegistrationCommand(principal account.Principal, requestID kernel.UUID) (ApproveRegistrationCommand, error) {
	command := ApproveRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setRequestID(requestID),
	); err != nil {
		return ApproveRegistrationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrApproveRegistrationCommandIsNotConstructed)
}

// Principal returns the acting admin.
func (c ApproveRegistrationCommand) Principal() account.Principal {
	return c.principal
}

// RequestID returns the registration request to approve.
func (c ApproveRegistrationCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *ApproveRegistrationCommand) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *ApproveRegistrationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}
