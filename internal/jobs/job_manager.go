package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpirationJob *OrderExpirationJob
	lowStockReportJob  *LowStockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers and schedule parameters as dependencies to wire up
// the job execution.
func NewJobManager(
	expireOrdersHandler commands.ExpirePendingOrdersCommandHandler,
	lowStockHandler queries.GetLowStockItemsQueryHandler,
	pendingWindow time.Duration,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExpirationJob: NewOrderExpirationJob(expireOrdersHandler, pendingWindow, logger),
		lowStockReportJob:  NewLowStockReportJob(lowStockHandler, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiration job: %w", err)
	}

	if err := jm.lowStockReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderExpirationJob.Stop()
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
	jm.orderExpirationJob.Stop()
}
