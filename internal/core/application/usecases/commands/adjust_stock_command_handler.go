package commands

import (
	"context"

	"commerce/internal/core/domain/model/item"
)

// AdjustStockCommandHandler handles manual stock corrections.
type AdjustStockCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock corrections.
// Requires an ItemUoWFactory for transactional persistence.
func NewAdjustStockCommandHandler(uowFactory ItemUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command within a transaction.
// Retrieves the item by SKU, replaces its available count, and persists
// the changes. Reserved units carry over unchanged.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	if err = aggregate.AdjustStock(cmd.NewAvailable()); err != nil {
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
