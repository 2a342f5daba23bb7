package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all fields", func(t *testing.T) {
		addr, err := kernel.NewAddress("101 Customer Drive", "Apt 4", "San Francisco", "CA", "94105")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "101 Customer Drive", addr.Street())
		assert.Equal(t, "Apt 4", addr.Apt())
		assert.Equal(t, "San Francisco", addr.City())
		assert.Equal(t, "CA", addr.State())
		assert.Equal(t, "94105", addr.Zipcode())
	})

	t.Run("should allow empty apt", func(t *testing.T) {
		addr, err := kernel.NewAddress("456 Employee Lane", "", "San Francisco", "CA", "94103")

		require.NoError(t, err)
		assert.Empty(t, addr.Apt())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name        string
			street      string
			city        string
			state       string
			zipcode     string
			expectedErr error
		}{
			{"missing street", "", "SF", "CA", "94105", kernel.ErrStreetIsRequired},
			{"missing city", "1 Main St", "", "CA", "94105", kernel.ErrCityIsRequired},
			{"missing state", "1 Main St", "SF", "", "94105", kernel.ErrStateIsRequired},
			{"missing zipcode", "1 Main St", "SF", "CA", "", kernel.ErrZipcodeIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewAddress(tc.street, "", tc.city, tc.state, tc.zipcode)

				require.Error(t, err)
				assert.Equal(t, tc.expectedErr, err)
			})
		}
	})
}

func TestAddress_String(t *testing.T) {
	t.Run("should include apt when present", func(t *testing.T) {
		addr, _ := kernel.NewAddress("1 Main St", "Apt 2", "SF", "CA", "94105")
		assert.Equal(t, "1 Main St, Apt 2, SF, CA, 94105", addr.String())
	})

	t.Run("should omit apt when absent", func(t *testing.T) {
		addr, _ := kernel.NewAddress("1 Main St", "", "SF", "CA", "94105")
		assert.Equal(t, "1 Main St, SF, CA, 94105", addr.String())
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	left, _ := kernel.NewAddress("1 Main St", "", "SF", "CA", "94105")
	same, _ := kernel.NewAddress("1 Main St", "", "SF", "CA", "94105")
	other, _ := kernel.NewAddress("2 Oak Ave", "", "SF", "CA", "94105")

	assert.True(t, left.IsEqual(same))
	assert.False(t, left.IsEqual(other))
}
