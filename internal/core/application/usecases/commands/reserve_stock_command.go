package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrReserveStockCommandIsNotConstructed = errors.New(
		"ReserveStockCommand must be created via NewReserveStockCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// ReserveStockCommand represents a request to hold stock for an order.
// Reserved units stay on hand but cannot be promised to anyone else.
// The item is addressed by SKU because warehouse flows key on it.
//
// Example:
//
//	cmd, err := NewReserveStockCommand("PROD-001", 30)
//	if err != nil {
//	    return fmt.Errorf("invalid reservation: %w", err)
//	}
//
//	handler := NewReserveStockCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to reserve stock: %w", err)
//	}
//	// 30 units are now held for fulfilment
type ReserveStockCommand struct { //nolint:recvcheck //using for validation
	sku      string
	quantity int

	guard guard.ConstructorGuard
}

// NewReserveStockCommand creates a command to hold stock on an item.
// Validates that the SKU is not empty and the quantity is positive.
func NewReserveStockCommand(sku string, quantity int) (ReserveStockCommand, error) {
	command := ReserveStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSKU(sku),
		command.setQuantity(quantity),
	); err != nil {
		return ReserveStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReserveStockCommandIsNotConstructed if validation fails.
func (c ReserveStockCommand) Validate() error {
	return c.guard.Validate(ErrReserveStockCommandIsNotConstructed)
}

// SKU returns the stock keeping unit of the item to reserve on.
func (c ReserveStockCommand) SKU() string {
	return c.sku
}

// Quantity returns how many units to reserve.
func (c ReserveStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReserveStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *ReserveStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
