package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ValidateOrderCommand represents a request to confirm a pending order.
// Moves the order from "Pending" to "Validated" so payment can proceed.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command to confirm a pending order.
func NewValidateOrderCommand(orderID kernel.UUID) (ValidateOrderCommand, error) {
	command := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ValidateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrValidateOrderCommandIsNotConstructed if validation fails.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to confirm.
func (c ValidateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ValidateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
