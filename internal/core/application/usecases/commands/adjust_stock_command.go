package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrNewAvailableIsInvalid = errors.New("new available must not be negative")
)

// AdjustStockCommand represents a manual correction of an item's available
// stock, typically after a physical inventory count. Reserved units are
// never touched by an adjustment.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	sku          string
	newAvailable int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to correct available stock.
// Validates that the SKU is not empty and the new count is not negative.
func NewAdjustStockCommand(sku string, newAvailable int) (AdjustStockCommand, error) {
	command := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSKU(sku),
		command.setNewAvailable(newAvailable),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustStockCommandIsNotConstructed if validation fails.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// SKU returns the stock keeping unit of the item to adjust.
func (c AdjustStockCommand) SKU() string {
	return c.sku
}

// NewAvailable returns the corrected available stock count.
func (c AdjustStockCommand) NewAvailable() int {
	return c.newAvailable
}

func (c *AdjustStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *AdjustStockCommand) setNewAvailable(newAvailable int) error {
	if newAvailable < 0 {
		return ErrNewAvailableIsInvalid
	}

	c.newAvailable = newAvailable
	return nil
}
