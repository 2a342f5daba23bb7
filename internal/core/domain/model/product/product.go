// Package product models the sellable catalog: products and the
// size/color variants that actually hold stock.
package product

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance
	// was not created through a constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	// ErrVariantIsNotConstructed is returned when a Variant instance
	// was not created through a constructor.
	ErrVariantIsNotConstructed = errors.New("Variant must be created via NewVariant or RestoreVariant")
	// ErrInsufficientStock is returned when a purchase exceeds the
	// variant's remaining stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Variant is a purchasable size/color combination of a product. Stock
// is tracked per variant.
type Variant struct {
	id        kernel.UUID
	productID kernel.UUID
	size      string
	color     string
	price     float64
	stock     int

	isConstructed bool
}

// NewVariant creates a validated variant.
func NewVariant(id, productID kernel.UUID, size, color string, price float64, stock int) (*Variant, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Variant{
		id:            id,
		productID:     productID,
		size:          size,
		color:         color,
		price:         price,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// RestoreVariant reconstructs a variant from persistence.
func RestoreVariant(id, productID kernel.UUID, size, color string, price float64, stock int) (*Variant, error) {
	return NewVariant(id, productID, size, color, price, stock)
}

// Validate ensures the Variant was created through a constructor.
func (v *Variant) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVariantIsNotConstructed
	}
	return nil
}

// ID returns the variant's unique identifier.
func (v *Variant) ID() kernel.UUID { return v.id }

// ProductID returns the owning product's identifier.
func (v *Variant) ProductID() kernel.UUID { return v.productID }

// Size returns the variant's size label.
func (v *Variant) Size() string { return v.size }

// Color returns the variant's color label.
func (v *Variant) Color() string { return v.color }

// Price returns the current unit price.
func (v *Variant) Price() float64 { return v.price }

// Stock returns the remaining stock.
func (v *Variant) Stock() int { return v.stock }

// ReserveStock removes quantity units from stock at checkout.
func (v *Variant) ReserveStock(quantity int) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > v.stock {
		return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, quantity, v.stock)
	}

	v.stock -= quantity
	return nil
}

// RestockBy returns quantity units to stock, for refunded returns.
func (v *Variant) RestockBy(quantity int) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	v.stock += quantity
	return nil
}

// Product is a catalog entry grouping its variants.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	imageURL    string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a validated product.
func NewProduct(id kernel.UUID, name, description, imageURL string, createdAt time.Time) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		imageURL:      imageURL,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name, description, imageURL string, createdAt time.Time) (*Product, error) {
	return NewProduct(id, name, description, imageURL, createdAt)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the display description.
func (p *Product) Description() string { return p.description }

// ImageURL returns the catalog image location.
func (p *Product) ImageURL() string { return p.imageURL }

// CreatedAt returns when the product was added to the catalog.
func (p *Product) CreatedAt() time.Time { return p.createdAt }
