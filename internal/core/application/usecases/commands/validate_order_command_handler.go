package commands

import (
	"context"
)

// ValidateOrderCommandHandler handles confirming pending orders.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewValidateOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewValidateOrderCommandHandler(uowFactory OrderUoWFactory) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command within a transaction.
// Retrieves the order, marks it validated, and persists the transition.
func (h *ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.MarkValidated(); err != nil {
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
