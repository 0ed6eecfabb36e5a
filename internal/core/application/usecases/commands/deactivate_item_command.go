package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrDeactivateItemCommandIsNotConstructed = errors.New(
	"DeactivateItemCommand must be created via NewDeactivateItemCommand constructor",
)

// DeactivateItemCommand represents a request to pull an item from sale.
// Deactivated items refuse all stock operations until reactivated.
// Deactivating an already inactive item is a silent no-op.
type DeactivateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateItemCommand creates a command to deactivate an item.
func NewDeactivateItemCommand(itemID kernel.UUID) (DeactivateItemCommand, error) {
	command := DeactivateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemID(itemID); err != nil {
		return DeactivateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateItemCommandIsNotConstructed if validation fails.
func (c DeactivateItemCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier of the item to deactivate.
func (c DeactivateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeactivateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
