package commands

import (
	"context"

	"commerce/internal/core/domain/model/item"
)

// CommitStockCommandHandler handles consuming reserved stock on shipment.
type CommitStockCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCommitStockCommandHandler creates a handler for stock commits.
// Requires an ItemUoWFactory for transactional persistence.
func NewCommitStockCommandHandler(uowFactory ItemUoWFactory) CommitStockCommandHandler {
	return CommitStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the commit command within a transaction.
// Retrieves the item by SKU, removes the requested units from the reserved
// pool, and persists the changes. Available stock is not touched.
func (h *CommitStockCommandHandler) Handle(ctx context.Context, cmd CommitStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sku, err := item.NewSKU(cmd.SKU())
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
	aggregate, err := itemRepo.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}

	if err = aggregate.CommitStock(cmd.Quantity()); err != nil {
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
