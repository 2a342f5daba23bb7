package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, 9.99)
	require.NoError(t, err)
	return []order.Item{item}
}

func pickupOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.TypePickup,
		status, testItems(t), nil, nil, nil, 1, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func deliveryOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("123 Main St", "", "Springfield", "IL", "62704")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		status, testItems(t), &address, nil, nil, 1, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func deliveryInStatus(t *testing.T, orderID kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(),
		status, 1, time.Now().UTC())
	require.NoError(t, err)
	return d
}

func TestStatusResolver_TerminalOrders(t *testing.T) {
	resolver := services.NewStatusResolver()

	for _, terminal := range []order.Status{
		order.StatusCancelled, order.StatusCompleted, order.StatusRejected,
	} {
		t.Run(terminal.String()+" allows only itself", func(t *testing.T) {
			pickup := pickupOrderInStatus(t, terminal)
			assert.Equal(t, []order.Status{terminal}, resolver.AllowedOrderStatuses(pickup, nil))

			withDelivery := deliveryOrderInStatus(t, terminal)
			del := deliveryInStatus(t, withDelivery.ID(), delivery.StatusPending)
			assert.Equal(t, []order.Status{terminal}, resolver.AllowedOrderStatuses(withDelivery, del))
		})
	}
}

func TestStatusResolver_PickupOrders(t *testing.T) {
	resolver := services.NewStatusResolver()

	tests := []struct {
		from     order.Status
		expected []order.Status
	}{
		{order.StatusPending, []order.Status{
			order.StatusPending, order.StatusAccepted, order.StatusRejected}},
		{order.StatusAccepted, []order.Status{
			order.StatusAccepted, order.StatusReadyForPickup, order.StatusCancelled}},
		{order.StatusReadyForPickup, []order.Status{
			order.StatusReadyForPickup, order.StatusCompleted, order.StatusCancelled}},
		{order.StatusAssignedToDelivery, []order.Status{order.StatusAssignedToDelivery}},
	}

	for _, test := range tests {
		t.Run("from "+test.from.String(), func(t *testing.T) {
			o := pickupOrderInStatus(t, test.from)
			assert.Equal(t, test.expected, resolver.AllowedOrderStatuses(o, nil))
		})
	}
}

func TestStatusResolver_DeliveryOrdersWithoutDelivery(t *testing.T) {
	resolver := services.NewStatusResolver()

	tests := []struct {
		from     order.Status
		expected []order.Status
	}{
		{order.StatusPending, []order.Status{
			order.StatusPending, order.StatusAccepted, order.StatusRejected}},
		{order.StatusAccepted, []order.Status{
			order.StatusAccepted, order.StatusCancelled}},
		{order.StatusReadyForPickup, []order.Status{order.StatusReadyForPickup}},
		{order.StatusAssignedToDelivery, []order.Status{order.StatusAssignedToDelivery}},
	}

	for _, test := range tests {
		t.Run("from "+test.from.String(), func(t *testing.T) {
			o := deliveryOrderInStatus(t, test.from)
			assert.Equal(t, test.expected, resolver.AllowedOrderStatuses(o, nil))
		})
	}
}

func TestStatusResolver_DeliveryOrdersWithDelivery(t *testing.T) {
	resolver := services.NewStatusResolver()

	tests := []struct {
		deliveryStatus delivery.Status
		expected       []order.Status
	}{
		{delivery.StatusPending, []order.Status{
			order.StatusAssignedToDelivery, order.StatusRejected, order.StatusCancelled}},
		{delivery.StatusPickedUp, []order.Status{order.StatusAssignedToDelivery}},
		{delivery.StatusInTransit, []order.Status{order.StatusAssignedToDelivery}},
		{delivery.StatusDelivered, []order.Status{order.StatusCompleted}},
		{delivery.StatusFailed, []order.Status{order.StatusRejected}},
		{delivery.StatusRejected, []order.Status{order.StatusRejected}},
	}

	for _, test := range tests {
		t.Run("delivery "+test.deliveryStatus.String(), func(t *testing.T) {
			o := deliveryOrderInStatus(t, order.StatusAssignedToDelivery)
			del := deliveryInStatus(t, o.ID(), test.deliveryStatus)
			assert.Equal(t, test.expected, resolver.AllowedOrderStatuses(o, del))
		})
	}
}

func TestStatusResolver_EnsureAllowed(t *testing.T) {
	resolver := services.NewStatusResolver()

	t.Run("pickup order must pass through ready for pickup", func(t *testing.T) {
		o := pickupOrderInStatus(t, order.StatusPending)

		require.NoError(t, resolver.EnsureAllowed(o, nil, order.StatusAccepted))
		require.NoError(t, o.MoveStatusTo(order.StatusAccepted))

		err := resolver.EnsureAllowed(o, nil, order.StatusCompleted)
		assert.ErrorIs(t, err, services.ErrStatusNotAllowed)

		require.NoError(t, resolver.EnsureAllowed(o, nil, order.StatusReadyForPickup))
		require.NoError(t, o.MoveStatusTo(order.StatusReadyForPickup))

		require.NoError(t, resolver.EnsureAllowed(o, nil, order.StatusCompleted))
	})

	t.Run("delivered delivery lets the admin complete the order", func(t *testing.T) {
		o := deliveryOrderInStatus(t, order.StatusAssignedToDelivery)
		del := deliveryInStatus(t, o.ID(), delivery.StatusDelivered)

		require.NoError(t, resolver.EnsureAllowed(o, del, order.StatusCompleted))
		assert.ErrorIs(t, resolver.EnsureAllowed(o, del, order.StatusCancelled),
			services.ErrStatusNotAllowed)
	})

	t.Run("order is view-only while the parcel is in motion", func(t *testing.T) {
		o := deliveryOrderInStatus(t, order.StatusAssignedToDelivery)
		del := deliveryInStatus(t, o.ID(), delivery.StatusInTransit)

		for _, target := range []order.Status{
			order.StatusCompleted, order.StatusCancelled, order.StatusRejected,
		} {
			assert.ErrorIs(t, resolver.EnsureAllowed(o, del, target), services.ErrStatusNotAllowed)
		}
		assert.NoError(t, resolver.EnsureAllowed(o, del, order.StatusAssignedToDelivery))
	})
}

func TestStatusResolver_CanAssignDelivery(t *testing.T) {
	resolver := services.NewStatusResolver()

	t.Run("accepted delivery order with no delivery may be assigned", func(t *testing.T) {
		o := deliveryOrderInStatus(t, order.StatusAccepted)
		assert.NoError(t, resolver.CanAssignDelivery(o, nil))
	})

	t.Run("pickup orders may not be assigned", func(t *testing.T) {
		o := pickupOrderInStatus(t, order.StatusAccepted)
		assert.ErrorIs(t, resolver.CanAssignDelivery(o, nil), services.ErrStatusNotAllowed)
	})

	t.Run("only accepted orders may be assigned", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPending, order.StatusAssignedToDelivery, order.StatusCompleted,
		} {
			o := deliveryOrderInStatus(t, status)
			assert.ErrorIs(t, resolver.CanAssignDelivery(o, nil), services.ErrStatusNotAllowed,
				"order in %s should not be assignable", status)
		}
	})

	t.Run("an order with a delivery may not be assigned twice", func(t *testing.T) {
		o := deliveryOrderInStatus(t, order.StatusAccepted)
		del := deliveryInStatus(t, o.ID(), delivery.StatusPending)
		assert.ErrorIs(t, resolver.CanAssignDelivery(o, del), services.ErrStatusNotAllowed)
	})
}
