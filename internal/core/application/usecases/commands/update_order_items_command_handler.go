package commands

import (
	"context"
)

// UpdateOrderItemsCommandHandler handles replacing the lines of an order.
// The order total is recomputed by the aggregate when the lines change.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemsCommandHandler creates a handler for order line replacement.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line replacement command within a transaction.
// Retrieves the order, replaces its lines, and persists the changes.
// Automatically rolls back on any error to maintain data consistency.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildOrderItems(cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
