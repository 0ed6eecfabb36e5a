package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob manages the scheduled cancellation of stale orders.
// Runs every minute to cancel orders that stayed pending past the window.
type OrderExpirationJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates a new job for expiring pending orders.
// Uses ExpirePendingOrdersCommandHandler to sweep orders older than window.
func NewOrderExpirationJob(
	handler commands.ExpirePendingOrdersCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start begins the order expiration job to run every minute.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpirePendingOrdersCommand(j.window)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order expiration job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed", "error", handleErr)
			return
		}

		// An empty sweep is the normal case and not worth logging
		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired, "window", j.window)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every minute)")
	return nil
}

// Stop stops the order expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
