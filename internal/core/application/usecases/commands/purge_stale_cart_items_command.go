package commands

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPurgeStaleCartItemsCommandIsNotConstructed = errors.New(
	"PurgeStaleCartItemsCommand must be created via NewPurgeStaleCartItemsCommand constructor",
)

// PurgeStaleCartItemsCommand removes cart lines untouched longer than
// the retention window. Issued by the maintenance job, not by any
// principal.
type PurgeStaleCartItemsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartItemsCommand creates a purge command with the given
// retention window.
func NewPurgeStaleCartItemsCommand(retention time.Duration) (PurgeStaleCartItemsCommand, error) {
	if retention <= 0 {
		return PurgeStaleCartItemsCommand{}, errs.NewValueIsInvalidErrorWithCause("retention",
			fmt.Errorf("%s is not greater than 0", retention))
	}

	return PurgeStaleCartItemsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartItemsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartItemsCommandIsNotConstructed)
}

// Retention returns the window cart lines are kept for.
func (c PurgeStaleCartItemsCommand) Retention() time.Duration {
	return c.retention
}
