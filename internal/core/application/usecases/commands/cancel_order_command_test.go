package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(customerPrincipal(t), orderID)
		require.NoError(t, err)

		assert.True(t, orderID.IsEqual(cmd.OrderID()))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	principal := customerPrincipal(t)
	ord := pickupOrder(t, principal.ID(), order.StatusPending)
	cmd, err := commands.NewCancelOrderCommand(principal, ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, ord.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()

	ord := pickupOrder(t, kernel.NewUUID(), order.StatusPending)
	cmd, err := commands.NewCancelOrderCommand(customerPrincipal(t), ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotOrderOwner)
	assert.Equal(t, order.StatusPending, ord.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()

	principal := customerPrincipal(t)
	ord := pickupOrder(t, principal.ID(), order.StatusAccepted)
	cmd, err := commands.NewCancelOrderCommand(principal, ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotCancellable)
	assert.Equal(t, order.StatusAccepted, ord.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NonCustomer(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelOrderCommand(adminPrincipal(t), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, account.ErrRoleNotAllowed)
	factory.AssertNotCalled(t, "Create")
}
