// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order and inventory management.
//
// # Available Jobs
//
// 1. OrderExpirationJob - Runs every minute to cancel orders that stayed pending past the configured window
// 2. LowStockReportJob - Runs every five minutes to warn about active items whose available stock fell below the threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers and schedule parameters
//	jobManager := jobs.NewJobManager(expireOrdersHandler, lowStockHandler, pendingWindow, lowStockThreshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiration job uses the cron expression "0 * * * * *" (every minute);
// the low stock report uses "0 */5 * * * *" (every five minutes). Expiration
// runs frequently because stale pending orders block reserved stock.
//
// # Error Handling
//
// - The expiration job logs sweep failures and stays silent when nothing expired
// - The low stock report logs query failures and warns once per low item
// - Failed job starts will stop any already running jobs
package jobs
