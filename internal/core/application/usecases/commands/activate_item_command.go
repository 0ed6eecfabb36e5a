package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrActivateItemCommandIsNotConstructed = errors.New(
	"ActivateItemCommand must be created via NewActivateItemCommand constructor",
)

// ActivateItemCommand represents a request to return an item to sale.
// Activating an already active item is a silent no-op.
type ActivateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivateItemCommand creates a command to activate an item.
func NewActivateItemCommand(itemID kernel.UUID) (ActivateItemCommand, error) {
	command := ActivateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemID(itemID); err != nil {
		return ActivateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrActivateItemCommandIsNotConstructed if validation fails.
func (c ActivateItemCommand) Validate() error {
	return c.guard.Validate(ErrActivateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier of the item to activate.
func (c ActivateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *ActivateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
