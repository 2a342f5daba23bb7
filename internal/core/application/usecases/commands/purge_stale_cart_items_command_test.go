package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeStaleCartItemsCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewPurgeStaleCartItemsCommand(30 * 24 * time.Hour)
		require.NoError(t, err)

		assert.Equal(t, 30*24*time.Hour, cmd.Retention())
	})

	t.Run("should reject a non-positive retention", func(t *testing.T) {
		_, err := commands.NewPurgeStaleCartItemsCommand(0)
		assert.Error(t, err)

		_, err = commands.NewPurgeStaleCartItemsCommand(-time.Hour)
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PurgeStaleCartItemsCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPurgeStaleCartItemsCommandIsNotConstructed)
	})
}

func TestPurgeStaleCartItemsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("returns the number of removed lines", func(t *testing.T) {
		cmd, err := commands.NewPurgeStaleCartItemsCommand(30 * 24 * time.Hour)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(cartRepo).Once(),
			cartRepo.On("RemoveStale", ctx, mock.AnythingOfType("time.Time")).
				Return(int64(7), nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPurgeStaleCartItemsCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, int64(7), removed)

		cutoff := cartRepo.Calls[0].Arguments.Get(1).(time.Time)
		assert.WithinDuration(t, time.Now().UTC().Add(-30*24*time.Hour), cutoff, time.Minute)

		cartRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("does not commit when the purge fails", func(t *testing.T) {
		cmd, err := commands.NewPurgeStaleCartItemsCommand(time.Hour)
		require.NoError(t, err)

		purgeErr := errors.New("purge failed")

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartRepository").Return(cartRepo).Once()
		cartRepo.On("RemoveStale", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), purgeErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPurgeStaleCartItemsCommandHandler(factory)
		removed, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, purgeErr)
		assert.Zero(t, removed)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
