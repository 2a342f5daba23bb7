package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob purges cart lines that have sat untouched longer than
// the retention window. Runs at the top of every hour.
type CartCleanupJob struct {
	handler   commands.PurgeStaleCartItemsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartCleanupJob creates a new job for purging stale cart lines.
func NewCartCleanupJob(
	handler commands.PurgeStaleCartItemsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the cleanup to run hourly.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeStaleCartItemsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged stale cart lines", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
