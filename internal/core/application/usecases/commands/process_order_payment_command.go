package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrProcessOrderPaymentCommandIsNotConstructed = errors.New(
	"ProcessOrderPaymentCommand must be created via NewProcessOrderPaymentCommand constructor",
)

// ProcessOrderPaymentCommand represents a request to charge a validated order.
// Moves the order from "Validated" to "Paid".
type ProcessOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderPaymentCommand creates a command to charge a validated order.
func NewProcessOrderPaymentCommand(orderID kernel.UUID) (ProcessOrderPaymentCommand, error) {
	command := ProcessOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ProcessOrderPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderPaymentCommandIsNotConstructed if validation fails.
func (c ProcessOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to charge.
func (c ProcessOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
