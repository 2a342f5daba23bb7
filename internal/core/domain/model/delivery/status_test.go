package delivery_test

import (
	"testing"

	"storefront/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   delivery.Status
		expected string
	}{
		{delivery.StatusUnknown, "UNKNOWN"},
		{delivery.StatusPending, "PENDING"},
		{delivery.StatusPickedUp, "PICKED_UP"},
		{delivery.StatusInTransit, "IN_TRANSIT"},
		{delivery.StatusDelivered, "DELIVERED"},
		{delivery.StatusFailed, "FAILED"},
		{delivery.StatusRejected, "REJECTED"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status string", func(t *testing.T) {
		valid := []string{"PENDING", "PICKED_UP", "IN_TRANSIT", "DELIVERED", "FAILED", "REJECTED"}

		for _, s := range valid {
			status, err := delivery.StatusFromString(s)
			require.NoError(t, err, "status %s should parse", s)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "pending", "LOST"} {
			_, err := delivery.StatusFromString(s)
			assert.Error(t, err, "status %q should not parse", s)
		}
	})
}

func TestStatus_AllowedNext(t *testing.T) {
	tests := []struct {
		from     delivery.Status
		expected []delivery.Status
	}{
		{delivery.StatusPending, []delivery.Status{
			delivery.StatusPending, delivery.StatusPickedUp, delivery.StatusRejected}},
		{delivery.StatusPickedUp, []delivery.Status{
			delivery.StatusPickedUp, delivery.StatusInTransit, delivery.StatusRejected}},
		{delivery.StatusInTransit, []delivery.Status{
			delivery.StatusInTransit, delivery.StatusDelivered, delivery.StatusFailed, delivery.StatusRejected}},
		{delivery.StatusDelivered, []delivery.Status{delivery.StatusDelivered}},
		{delivery.StatusFailed, []delivery.Status{delivery.StatusFailed}},
		{delivery.StatusRejected, []delivery.Status{delivery.StatusRejected}},
	}

	for _, test := range tests {
		t.Run("from "+test.from.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.from.AllowedNext())
		})
	}

	t.Run("unknown allows nothing", func(t *testing.T) {
		assert.Nil(t, delivery.StatusUnknown.AllowedNext())
	})
}

func TestStatus_CanMoveTo(t *testing.T) {
	assert.True(t, delivery.StatusPending.CanMoveTo(delivery.StatusPickedUp))
	assert.True(t, delivery.StatusInTransit.CanMoveTo(delivery.StatusFailed))
	assert.True(t, delivery.StatusPickedUp.CanMoveTo(delivery.StatusPickedUp))

	assert.False(t, delivery.StatusPending.CanMoveTo(delivery.StatusDelivered))
	assert.False(t, delivery.StatusPickedUp.CanMoveTo(delivery.StatusPending))
	assert.False(t, delivery.StatusDelivered.CanMoveTo(delivery.StatusFailed))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusDelivered.IsTerminal())
	assert.True(t, delivery.StatusFailed.IsTerminal())
	assert.True(t, delivery.StatusRejected.IsTerminal())

	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusPickedUp.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
}
