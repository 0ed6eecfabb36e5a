package commands

import (
	"context"
)

// ActivateItemCommandHandler handles returning items to sale.
type ActivateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewActivateItemCommandHandler creates a handler for item activation.
// Requires an ItemUoWFactory for transactional persistence.
func NewActivateItemCommandHandler(uowFactory ItemUoWFactory) ActivateItemCommandHandler {
	return ActivateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command within a transaction.
// Retrieves the item, activates it, and persists the change.
func (h *ActivateItemCommandHandler) Handle(ctx context.Context, cmd ActivateItemCommand) error {
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

	if err = aggregate.Activate(); err != nil {
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
