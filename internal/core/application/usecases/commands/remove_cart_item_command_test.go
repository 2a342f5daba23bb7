package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveCartItemCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		variantID := kernel.NewUUID()

		cmd, err := commands.NewRemoveCartItemCommand(customerPrincipal(t), variantID)
		require.NoError(t, err)

		assert.True(t, variantID.IsEqual(cmd.VariantID()))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RemoveCartItemCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrRemoveCartItemCommandIsNotConstructed)
	})
}

func TestRemoveCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	principal := customerPrincipal(t)
	variantID := kernel.NewUUID()
	line := cartLine(t, principal.ID(), variantID, 1)
	cmd, err := commands.NewRemoveCartItemCommand(principal, variantID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomerAndVariant", ctx, principal.ID(), variantID).Return(line, nil).Once(),
		cartRepo.On("Remove", ctx, line.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()

	principal := customerPrincipal(t)
	variantID := kernel.NewUUID()
	cmd, err := commands.NewRemoveCartItemCommand(principal, variantID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("GetByCustomerAndVariant", ctx, principal.ID(), variantID).
		Return(nil, errs.ErrObjectNotFound).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("clears the customer's cart", func(t *testing.T) {
		principal := customerPrincipal(t)
		cmd, err := commands.NewClearCartCommand(principal)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(cartRepo).Once(),
			cartRepo.On("RemoveAllForCustomer", ctx, principal.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewClearCartCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		cartRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rejects non-customer principals", func(t *testing.T) {
		cmd, err := commands.NewClearCartCommand(adminPrincipal(t))
		require.NoError(t, err)

		factory := new(MockCartUoWFactory)
		h := commands.NewClearCartCommandHandler(factory)

		err = h.Handle(ctx, cmd)
		assert.ErrorIs(t, err, account.ErrRoleNotAllowed)
		factory.AssertNotCalled(t, "Create")
	})
}
