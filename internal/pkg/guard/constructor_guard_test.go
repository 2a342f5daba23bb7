package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errNotConstructed := errors.New("CartItem must be created via its constructor")

	type cartItem struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	newCartItem := func(quantity int) (cartItem, error) {
		if quantity <= 0 {
			return cartItem{}, errors.New("quantity must be positive")
		}
		return cartItem{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_item_validates", func(t *testing.T) {
		item, err := newCartItem(3)

		require.NoError(t, err)
		require.NoError(t, item.guard.Validate(errNotConstructed))
		assert.Equal(t, 3, item.quantity)
	})

	t.Run("zero_value_item_fails_validation", func(t *testing.T) {
		var item cartItem

		err := item.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
