package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// UpdateItemCommandHandler handles changes to item catalog attributes.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item attribute changes.
// Requires an ItemUoWFactory for transactional persistence.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attribute change command within a transaction.
// Retrieves the item, applies the new attributes, and persists the changes.
// When nothing actually changed the aggregate stays untouched and the
// update writes back the same state.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	price, err := kernel.NewPriceFromFloat(cmd.Price(), cmd.Currency())
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

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Description(), price, cmd.Category()); err != nil {
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
