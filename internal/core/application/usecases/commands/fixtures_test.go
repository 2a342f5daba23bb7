package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func principalWithRole(t *testing.T, role account.Role) account.Principal {
	t.Helper()
	p, err := account.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func adminPrincipal(t *testing.T) account.Principal {
	return principalWithRole(t, account.RoleAdmin)
}

func employeePrincipal(t *testing.T) account.Principal {
	return principalWithRole(t, account.RoleEmployee)
}

func customerPrincipal(t *testing.T) account.Principal {
	return principalWithRole(t, account.RoleCustomer)
}

func accountWithRole(t *testing.T, id kernel.UUID, role account.Role) *account.Account {
	t.Helper()
	a, err := account.RestoreAccount(id, role, "Pat Doe", "pat@example.com",
		"$2a$10$abcdefghijklmnopqrstuv", time.Now().UTC())
	require.NoError(t, err)
	return a
}

func orderItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, 19.99)
	require.NoError(t, err)
	return []order.Item{item}
}

func pickupOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, order.TypePickup,
		status, orderItems(t), nil, nil, nil, 1, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func completedOrderWithReturn(t *testing.T, customerID kernel.UUID, returnStatus order.ReturnStatus) *order.Order {
	t.Helper()
	request, err := order.RestoreReturnRequest(returnStatus, order.ReturnMethodUPSStore,
		"arrived damaged", time.Now().UTC())
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, order.TypePickup,
		order.StatusCompleted, orderItems(t), nil, nil, request, 1, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func deliveryOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("123 Main St", "", "Springfield", "IL", "62704")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, order.TypeDelivery,
		status, orderItems(t), &address, nil, nil, 1, time.Now().UTC())
	require.NoError(t, err)
	return o
}
