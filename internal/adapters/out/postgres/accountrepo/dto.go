// Package accountrepo provides data transfer objects and mapping functions
// for account and registration request persistence.
package accountrepo

import (
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
// Email carries a unique index because it is the sign-in identifier.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         string    `gorm:"type:varchar(16)"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

// RegistrationRequestDTO represents a pending employee application in the
// onboarding queue. Rows are deleted once the admin decides.
type RegistrationRequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string
	PasswordHash string
	RequestedAt  time.Time
}

// TableName specifies the database table name for registration requests.
func (RegistrationRequestDTO) TableName() string {
	return "registration_requests"
}

// fromDomain converts an account domain aggregate to its database
// representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Role:         aggregate.Role().String(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, role, dto.Name, dto.Email,
		dto.PasswordHash, dto.CreatedAt)
}

// requestFromDomain converts a registration request to its database
// representation.
func requestFromDomain(request *account.RegistrationRequest) RegistrationRequestDTO {
	return RegistrationRequestDTO{
		ID:           request.ID().Bytes(),
		Name:         request.Name(),
		Email:        request.Email(),
		PasswordHash: request.PasswordHash(),
		RequestedAt:  request.RequestedAt(),
	}
}

// requestToDomain converts a database DTO to a registration request.
func requestToDomain(dto RegistrationRequestDTO) (*account.RegistrationRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreRegistrationRequest(id, dto.Name, dto.Email,
		dto.PasswordHash, dto.RequestedAt)
}
