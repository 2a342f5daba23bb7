package product_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create a valid product", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := product.NewProduct(id, "Canvas Tote", "Everyday carry", "/images/tote.jpg", now)
		require.NoError(t, err)

		assert.True(t, id.IsEqual(p.ID()))
		assert.Equal(t, "Canvas Tote", p.Name())
		assert.Equal(t, "Everyday carry", p.Description())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "", "", now)
		assert.Error(t, err)
	})
}

func TestVariant_ReserveStock(t *testing.T) {
	newVariant := func(t *testing.T, stock int) *product.Variant {
		t.Helper()
		v, err := product.NewVariant(kernel.NewUUID(), kernel.NewUUID(), "M", "black", 24.99, stock)
		require.NoError(t, err)
		return v
	}

	t.Run("should reduce stock", func(t *testing.T) {
		v := newVariant(t, 5)
		require.NoError(t, v.ReserveStock(3))
		assert.Equal(t, 2, v.Stock())
	})

	t.Run("should allow reserving the last unit", func(t *testing.T) {
		v := newVariant(t, 2)
		require.NoError(t, v.ReserveStock(2))
		assert.Equal(t, 0, v.Stock())
	})

	t.Run("should refuse overselling", func(t *testing.T) {
		v := newVariant(t, 1)
		err := v.ReserveStock(2)
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 1, v.Stock())
	})

	t.Run("should refuse non-positive quantity", func(t *testing.T) {
		v := newVariant(t, 5)
		assert.Error(t, v.ReserveStock(0))
		assert.Error(t, v.ReserveStock(-1))
	})
}

func TestVariant_RestockBy(t *testing.T) {
	v, err := product.NewVariant(kernel.NewUUID(), kernel.NewUUID(), "L", "navy", 19.99, 0)
	require.NoError(t, err)

	require.NoError(t, v.RestockBy(4))
	assert.Equal(t, 4, v.Stock())

	assert.Error(t, v.RestockBy(0))
}
