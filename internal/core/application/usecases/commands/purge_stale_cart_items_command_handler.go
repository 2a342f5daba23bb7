package commands

import (
	"context"
	"fmt"
	"time"
)

// PurgeStaleCartItemsCommandHandler deletes cart lines older than the
// retention window and reports how many went.
type PurgeStaleCartItemsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeStaleCartItemsCommandHandler creates a handler for the cart
// cleanup job.
func NewPurgeStaleCartItemsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartItemsCommandHandler {
	return PurgeStaleCartItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge and returns the number of removed lines.
func (h PurgeStaleCartItemsCommandHandler) Handle(ctx context.Context, command PurgeStaleCartItemsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.Retention())

	removed, err := uow.CartRepository().RemoveStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("remove stale cart lines: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
