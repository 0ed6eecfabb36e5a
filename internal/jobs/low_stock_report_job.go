package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports items running low on stock.
// Runs every five minutes and emits a warning per item below the threshold
// so operators can restock before availability hits zero.
type LowStockReportJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a new job reporting items whose available
// stock fell below threshold.
func NewLowStockReportJob(
	handler queries.GetLowStockItemsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run every five minutes.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockItemsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", queryErr)
			return
		}

		items, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", handleErr)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Item is running low on stock",
				"sku", item.SKU,
				"name", item.Name,
				"available", item.Available,
				"reserved", item.Reserved,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every five minutes)")
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
