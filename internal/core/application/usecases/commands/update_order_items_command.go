package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace the lines of an
// existing order. Only possible while the order has not been paid.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's lines.
// Validates that the order ID is valid and at least one line is present.
func NewUpdateOrderItemsCommand(orderID kernel.UUID, lines []OrderLine) (UpdateOrderItemsCommand, error) {
	command := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLines(lines),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderItemsCommandIsNotConstructed if validation fails.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to change.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns a copy of the replacement order lines.
func (c UpdateOrderItemsCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
