package account

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Domain errors for account operations.
var (
	// ErrAccountIsNotConstructed is returned when an Account instance
	// was not created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
	// ErrNameIsRequired is returned when an account has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when an account has no email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when an account has no
	// password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// Account is an authenticated principal of the store: a customer, a
// delivery employee, or an admin. The stored password is always a
// bcrypt hash, never plaintext.
type Account struct {
	id           kernel.UUID
	role         Role
	name         string
	email        string
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewAccount creates a new account with an already-hashed password.
func NewAccount(
	id kernel.UUID,
	role Role,
	name string,
	email string,
	passwordHash string,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(
	id kernel.UUID,
	role Role,
	name string,
	email string,
	passwordHash string,
	createdAt time.Time,
) (*Account, error) {
	return NewAccount(id, role, name, email, passwordHash, createdAt)
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the sign-in email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// CreatedAt returns when the account was created.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = passwordHash
	return nil
}
