package ports

import (
	"context"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for store
// principals and the employee registration queue.
type AccountRepository interface {
	// Add persists a new account to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its sign-in email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// AddRegistrationRequest persists a new employee registration.
	AddRegistrationRequest(ctx context.Context, request *account.RegistrationRequest) error

	// GetRegistrationRequest retrieves a pending registration by id.
	GetRegistrationRequest(ctx context.Context, id kernel.UUID) (*account.RegistrationRequest, error)

	// GetAllRegistrationRequests retrieves the pending registrations,
	// oldest first.
	GetAllRegistrationRequests(ctx context.Context) ([]*account.RegistrationRequest, error)

	// RemoveRegistrationRequest deletes a registration once decided.
	RemoveRegistrationRequest(ctx context.Context, id kernel.UUID) error
}
