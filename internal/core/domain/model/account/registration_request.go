package account

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrRegistrationRequestIsNotConstructed is returned when a
// RegistrationRequest instance was not created through a constructor.
var ErrRegistrationRequestIsNotConstructed = errors.New(
	"RegistrationRequest must be created via NewRegistrationRequest or RestoreRegistrationRequest")

// RegistrationRequest is a prospective delivery employee waiting for an
// admin's decision. Approval turns it into an employee account and
// removes the request; rejection just removes it.
type RegistrationRequest struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	requestedAt  time.Time

	isConstructed bool
}

// NewRegistrationRequest creates a pending employee registration.
func NewRegistrationRequest(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	requestedAt time.Time,
) (*RegistrationRequest, error) {
	r := &RegistrationRequest{
		requestedAt:   requestedAt,
		isConstructed: true,
	}

	if err := r.set(id, name, email, passwordHash); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRegistrationRequest reconstructs a request from persistence.
func RestoreRegistrationRequest(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	requestedAt time.Time,
) (*RegistrationRequest, error) {
	return NewRegistrationRequest(id, name, email, passwordHash, requestedAt)
}

func (r *RegistrationRequest) set(id kernel.UUID, name, email, passwordHash string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return ErrNameIsRequired
	}
	if email == "" {
		return ErrEmailIsRequired
	}
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	r.id = id
	r.name = name
	r.email = email
	r.passwordHash = passwordHash
	return nil
}

// Validate ensures the request was created through a constructor.
func (r *RegistrationRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegistrationRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *RegistrationRequest) ID() kernel.UUID {
	return r.id
}

// Name returns the applicant's display name.
func (r *RegistrationRequest) Name() string {
	return r.name
}

// Email returns the applicant's sign-in email.
func (r *RegistrationRequest) Email() string {
	return r.email
}

// PasswordHash returns the bcrypt hash the applicant registered with.
func (r *RegistrationRequest) PasswordHash() string {
	return r.passwordHash
}

// RequestedAt returns when the application was filed.
func (r *RegistrationRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// ToEmployee converts an approved request into an employee account.
func (r *RegistrationRequest) ToEmployee(accountID kernel.UUID, approvedAt time.Time) (*Account, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return NewAccount(accountID, RoleEmployee, r.name, r.email, r.passwordHash, approvedAt)
}
