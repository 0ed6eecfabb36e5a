package commands

import (
	"context"
	"time"
)

// expiredOrderCancelReason is recorded on every order the sweep cancels.
const expiredOrderCancelReason = "expired after exceeding the pending window"

// ExpirePendingOrdersCommandHandler orchestrates the expiration sweep.
// Cancels every order that stayed pending longer than the configured window.
// All cancellations occur within a single transaction.
//
// Example:
//
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory)
//	cmd, _ := NewExpirePendingOrdersCommand(30 * time.Minute)
//
//	// This would typically be called periodically by a scheduler
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("expiration sweep failed: %w", err)
//	}
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiration sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiration command.
// Retrieves all pending orders older than the window, cancels each, and
// reports how many were cancelled. A single failure rolls back the whole sweep.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.Window())

	stale, err := orderRepo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(expiredOrderCancelReason); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
