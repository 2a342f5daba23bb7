package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDeliveryCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		employeeID := kernel.NewUUID()

		cmd, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), orderID, employeeID)
		require.NoError(t, err)

		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.True(t, employeeID.IsEqual(cmd.EmployeeID()))
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), kernel.UUID{}, kernel.NewUUID())
		assert.Error(t, err)

		_, err = commands.NewAssignDeliveryCommand(adminPrincipal(t), kernel.NewUUID(), kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignDeliveryCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignDeliveryCommandIsNotConstructed)
	})
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	ord := deliveryOrder(t, kernel.NewUUID(), order.StatusAccepted)
	employeeID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), ord.ID(), employeeID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, employeeID).
			Return(accountWithRole(t, employeeID, account.RoleEmployee), nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusAssignedToDelivery, ord.Status())

	added := deliveryRepo.Calls[1].Arguments.Get(1).(*delivery.Delivery)
	assert.Equal(t, delivery.StatusPending, added.Status())
	assert.True(t, added.OrderID().IsEqual(ord.ID()))
	assert.True(t, added.DeliveryPersonID().IsEqual(employeeID))

	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_EmployeeResolution(t *testing.T) {
	ctx := t.Context()

	runWith := func(t *testing.T, employee *account.Account, lookupErr error) error {
		ord := deliveryOrder(t, kernel.NewUUID(), order.StatusAccepted)
		employeeID := kernel.NewUUID()
		if employee != nil {
			employeeID = employee.ID()
		}
		cmd, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), ord.ID(), employeeID)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		deliveryRepo := new(MockDeliveryRepository)
		accountRepo := new(MockAccountRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("AccountRepository").Return(accountRepo).Once()
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return(nil, errs.ErrObjectNotFound).Once()
		accountRepo.On("Get", ctx, employeeID).Return(employee, lookupErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		handleErr := commands.NewAssignDeliveryCommandHandler(factory).Handle(ctx, cmd)

		deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		assert.Equal(t, order.StatusAccepted, ord.Status())
		return handleErr
	}

	t.Run("unknown employee id", func(t *testing.T) {
		err := runWith(t, nil, errs.ErrObjectNotFound)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("customer account", func(t *testing.T) {
		customer := accountWithRole(t, kernel.NewUUID(), account.RoleCustomer)
		err := runWith(t, customer, nil)
		assert.ErrorIs(t, err, commands.ErrNotEmployeeAccount)
	})

	t.Run("admin account", func(t *testing.T) {
		admin := accountWithRole(t, kernel.NewUUID(), account.RoleAdmin)
		err := runWith(t, admin, nil)
		assert.ErrorIs(t, err, commands.ErrNotEmployeeAccount)
	})
}

func TestAssignDeliveryCommandHandler_Handle_Preconditions(t *testing.T) {
	ctx := t.Context()

	runWith := func(t *testing.T, ord *order.Order, existing *delivery.Delivery) error {
		cmd, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), ord.ID(), kernel.NewUUID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		deliveryRepo := new(MockDeliveryRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		if existing != nil {
			deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return(existing, nil).Once()
		} else {
			deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return(nil, errs.ErrObjectNotFound).Once()
		}
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		handleErr := commands.NewAssignDeliveryCommandHandler(factory).Handle(ctx, cmd)

		deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		return handleErr
	}

	t.Run("pickup order", func(t *testing.T) {
		ord := pickupOrder(t, kernel.NewUUID(), order.StatusAccepted)
		assert.ErrorIs(t, runWith(t, ord, nil), services.ErrStatusNotAllowed)
	})

	t.Run("order not yet accepted", func(t *testing.T) {
		ord := deliveryOrder(t, kernel.NewUUID(), order.StatusPending)
		assert.ErrorIs(t, runWith(t, ord, nil), services.ErrStatusNotAllowed)
	})

	t.Run("delivery already exists", func(t *testing.T) {
		ord := deliveryOrder(t, kernel.NewUUID(), order.StatusAccepted)
		existing, err := delivery.NewDelivery(kernel.NewUUID(), ord.ID(), kernel.NewUUID(), ord.CreatedAt())
		require.NoError(t, err)
		assert.ErrorIs(t, runWith(t, ord, existing), services.ErrStatusNotAllowed)
	})
}

func TestAssignDeliveryCommandHandler_Handle_RollsBackOnSecondWrite(t *testing.T) {
	ctx := t.Context()

	ord := deliveryOrder(t, kernel.NewUUID(), order.StatusAccepted)
	employeeID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(adminPrincipal(t), ord.ID(), employeeID)
	require.NoError(t, err)

	writeErr := errors.New("order write failed")

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, employeeID).
			Return(accountWithRole(t, employeeID, account.RoleEmployee), nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(writeErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, writeErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_NonAdmin(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignDeliveryCommand(employeePrincipal(t), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderDeliveryUoWFactory)
	h := commands.NewAssignDeliveryCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, account.ErrRoleNotAllowed)
	factory.AssertNotCalled(t, "Create")
}
