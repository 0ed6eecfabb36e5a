package commands

import (
	"context"

	"commerce/internal/core/domain/model/item"
)

// ReserveStockCommandHandler handles stock reservation requests.
// Reservation fails when the item is inactive or has too few available units.
//
// Example:
//
//	handler := NewReserveStockCommandHandler(uowFactory)
//	cmd, _ := NewReserveStockCommand("PROD-001", 30)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrBusinessRuleViolated) {
//	    log.Printf("Reservation refused: %v", err)
//	}
type ReserveStockCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewReserveStockCommandHandler creates a handler for stock reservations.
// Requires an ItemUoWFactory for transactional persistence.
func NewReserveStockCommandHandler(uowFactory ItemUoWFactory) ReserveStockCommandHandler {
	return ReserveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command within a transaction.
// Retrieves the item by SKU, moves the requested units from available to
// reserved, and persists the changes. Concurrent reservations on the same
// item are serialized by the version check on save.
func (h *ReserveStockCommandHandler) Handle(ctx context.Context, cmd ReserveStockCommand) error {
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

	if err = aggregate.ReserveStock(cmd.Quantity()); err != nil {
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
