package commands

import (
	"context"
)

// ProcessOrderPaymentCommandHandler handles charging validated orders.
// The OrderPaid event raised by the aggregate carries the charged amount.
type ProcessOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProcessOrderPaymentCommandHandler creates a handler for payment processing.
// Requires an OrderUoWFactory for transactional persistence.
func NewProcessOrderPaymentCommandHandler(uowFactory OrderUoWFactory) ProcessOrderPaymentCommandHandler {
	return ProcessOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command within a transaction.
// Retrieves the order, marks it paid, and persists the transition.
func (h *ProcessOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessOrderPaymentCommand) error {
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

	if err = aggregate.ProcessPayment(); err != nil {
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
