package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrReleaseStockCommandIsNotConstructed = errors.New(
	"ReleaseStockCommand must be created via NewReleaseStockCommand constructor",
)

// ReleaseStockCommand represents a request to return reserved stock to
// the available pool, typically after an order fell through.
type ReleaseStockCommand struct { //nolint:recvcheck //using for validation
	sku      string
	quantity int

	guard guard.ConstructorGuard
}

// NewReleaseStockCommand creates a command to release reserved stock.
// Validates that the SKU is not empty and the quantity is positive.
func NewReleaseStockCommand(sku string, quantity int) (ReleaseStockCommand, error) {
	command := ReleaseStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSKU(sku),
		command.setQuantity(quantity),
	); err != nil {
		return ReleaseStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseStockCommandIsNotConstructed if validation fails.
func (c ReleaseStockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStockCommandIsNotConstructed)
}

// SKU returns the stock keeping unit of the item to release on.
func (c ReleaseStockCommand) SKU() string {
	return c.sku
}

// Quantity returns how many reserved units to return.
func (c ReleaseStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReleaseStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *ReleaseStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
