package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRegistrationsQueryHandler reads the employee onboarding
// queue from the database.
type GetPendingRegistrationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRegistrationsQueryHandler creates a handler for the
// onboarding queue.
func NewGetPendingRegistrationsQueryHandler(db *gorm.DB) GetPendingRegistrationsQueryHandler {
	return GetPendingRegistrationsQueryHandler{db: db}
}

// Handle executes the query. Applications are returned oldest first so
// the admin works the queue in arrival order.
func (h GetPendingRegistrationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRegistrationsQuery,
) ([]GetPendingRegistrationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().MustOnboardEmployees(); err != nil {
		return nil, err
	}

	responses := make([]GetPendingRegistrationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, requested_at
		FROM registration_requests
		ORDER BY requested_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			name, email string
			requestedAt time.Time
		)

		if err = rows.Scan(&id, &name, &email, &requestedAt); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetPendingRegistrationsQueryResponse{
			ID:          requestID,
			Name:        name,
			Email:       email,
			RequestedAt: requestedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
