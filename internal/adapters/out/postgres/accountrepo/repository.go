package accountrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its sign-in email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddRegistrationRequest saves a new employee application.
func (r *GormAccountRepository) AddRegistrationRequest(ctx context.Context, request *account.RegistrationRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRegistrationRequest retrieves a pending application by ID.
func (r *GormAccountRepository) GetRegistrationRequest(ctx context.Context, id kernel.UUID) (*account.RegistrationRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RegistrationRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("registrationRequest", id.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

// GetAllRegistrationRequests retrieves pending applications, oldest
// first so the queue is processed in arrival order.
func (r *GormAccountRepository) GetAllRegistrationRequests(ctx context.Context) ([]*account.RegistrationRequest, error) {
	var dtos []RegistrationRequestDTO
	if err := r.db.WithContext(ctx).Order("requested_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*account.RegistrationRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := requestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// RemoveRegistrationRequest deletes an application once decided.
func (r *GormAccountRepository) RemoveRegistrationRequest(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RegistrationRequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("registrationRequest", id.String())
	}

	return nil
}
