package commands

import (
	"context"

	"commerce/internal/core/domain/model/item"
)

// ReleaseStockCommandHandler handles returning reserved stock to the
// available pool.
type ReleaseStockCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewReleaseStockCommandHandler creates a handler for stock releases.
// Requires an ItemUoWFactory for transactional persistence.
func NewReleaseStockCommandHandler(uowFactory ItemUoWFactory) ReleaseStockCommandHandler {
	return ReleaseStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command within a transaction.
// Retrieves the item by SKU, moves the requested units from reserved back
// to available, and persists the changes.
func (h *ReleaseStockCommandHandler) Handle(ctx context.Context, cmd ReleaseStockCommand) error {
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

	if err = aggregate.ReleaseStock(cmd.Quantity()); err != nil {
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
