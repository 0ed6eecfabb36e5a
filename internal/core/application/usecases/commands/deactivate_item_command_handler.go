package commands

import (
	"context"
)

// DeactivateItemCommandHandler handles pulling items from sale.
type DeactivateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeactivateItemCommandHandler creates a handler for item deactivation.
// Requires an ItemUoWFactory for transactional persistence.
func NewDeactivateItemCommandHandler(uowFactory ItemUoWFactory) DeactivateItemCommandHandler {
	return DeactivateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command within a transaction.
// Retrieves the item, deactivates it, and persists the change.
// Reservations already held survive deactivation and can still be
// released or committed once the item is reactivated.
func (h *DeactivateItemCommandHandler) Handle(ctx context.Context, cmd DeactivateItemCommand) error {
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

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Deactivate(); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
