package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddProduct saves a new catalog entry to the database.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GetAllProducts retrieves the whole catalog, newest first.
func (r *GormCatalogRepository) GetAllProducts(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// AddVariant saves a new variant to the database.
func (r *GormCatalogRepository) AddVariant(ctx context.Context, variant *product.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	dto := variantFromDomain(variant)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetVariant retrieves a variant by ID.
func (r *GormCatalogRepository) GetVariant(ctx context.Context, id kernel.UUID) (*product.Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VariantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("variant", id.String())
		}
		return nil, err
	}

	return variantToDomain(dto)
}

// GetVariantsForProduct retrieves a product's variants.
func (r *GormCatalogRepository) GetVariantsForProduct(ctx context.Context, productID kernel.UUID) ([]*product.Variant, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VariantDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID.Bytes()).
		Order("size, color").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	variants := make([]*product.Variant, 0, len(dtos))
	for _, dto := range dtos {
		v, err := variantToDomain(dto)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return variants, nil
}

// UpdateVariant saves stock and price changes to a variant. Stock
// reservation at checkout runs inside the same transaction as the order
// write, so a plain row update suffices here.
func (r *GormCatalogRepository) UpdateVariant(ctx context.Context, variant *product.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	dto := variantFromDomain(variant)
	result := r.db.WithContext(ctx).Model(&VariantDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"price": dto.Price,
			"stock": dto.Stock,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("variant", variant.ID().String())
	}

	return nil
}
