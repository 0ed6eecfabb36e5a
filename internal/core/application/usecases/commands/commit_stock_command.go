package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrCommitStockCommandIsNotConstructed = errors.New(
	"CommitStockCommand must be created via NewCommitStockCommand constructor",
)

// CommitStockCommand represents a request to consume reserved stock,
// typically when a reserved order ships. Committed units leave the
// stock level entirely.
type CommitStockCommand struct { //nolint:recvcheck //using for validation
	sku      string
	quantity int

	guard guard.ConstructorGuard
}

// NewCommitStockCommand creates a command to consume reserved stock.
// Validates that the SKU is not empty and the quantity is positive.
func NewCommitStockCommand(sku string, quantity int) (CommitStockCommand, error) {
	command := CommitStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSKU(sku),
		command.setQuantity(quantity),
	); err != nil {
		return CommitStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommitStockCommandIsNotConstructed if validation fails.
func (c CommitStockCommand) Validate() error {
	return c.guard.Validate(ErrCommitStockCommandIsNotConstructed)
}

// SKU returns the stock keeping unit of the item to commit on.
func (c CommitStockCommand) SKU() string {
	return c.sku
}

// Quantity returns how many reserved units to consume.
func (c CommitStockCommand) Quantity() int {
	return c.quantity
}

func (c *CommitStockCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CommitStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
