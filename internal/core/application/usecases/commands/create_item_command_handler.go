package commands

import (
	"context"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"
)

// CreateItemCommandHandler handles the business logic for item registration.
// Creates active items with their opening stock fully available.
//
// Example:
//
//	handler := NewCreateItemCommandHandler(uowFactory)
//	cmd, _ := NewCreateItemCommand(kernel.NewUUID(), "PROD-001", "Wireless Mouse", "", 25.99, "", "Electronics", 100)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("item registration failed: %w", err)
//	}
//	// Item is now active and ready for stock operations
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item registration operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item registration command.
// Builds the SKU and price value objects, creates the item, and persists it.
// A duplicate SKU surfaces as a business rule violation from the repository.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sku, err := item.NewSKU(cmd.SKU())
	if err != nil {
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
	aggregate, err := item.NewItem(
		cmd.ItemID(),
		sku,
		cmd.Name(),
		cmd.Description(),
		price,
		cmd.Category(),
		cmd.InitialStock(),
	)
	if err != nil {
		return err
	}

	if err = itemRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
