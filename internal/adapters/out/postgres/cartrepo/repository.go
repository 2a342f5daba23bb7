package cartrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart line to the database.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves quantity changes to an existing cart line.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"quantity": dto.Quantity,
			"added_at": dto.AddedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", item.ID().String())
	}

	return nil
}

// GetByCustomerAndVariant retrieves the customer's line for a variant.
func (r *GormCartRepository) GetByCustomerAndVariant(ctx context.Context, customerID, variantID kernel.UUID) (*cart.CartItem, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := variantID.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND variant_id = ?", customerID.Bytes(), variantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartItem", variantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForCustomer retrieves the customer's cart lines, oldest first.
func (r *GormCartRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.CartItem, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("added_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Remove deletes a single cart line.
func (r *GormCartRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", id.String())
	}

	return nil
}

// RemoveAllForCustomer empties a customer's cart.
func (r *GormCartRepository) RemoveAllForCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "customer_id = ?", customerID.Bytes()).Error
}

// RemoveStale deletes lines last touched before the cutoff and returns
// how many were removed.
func (r *GormCartRepository) RemoveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "added_at < ?", cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
