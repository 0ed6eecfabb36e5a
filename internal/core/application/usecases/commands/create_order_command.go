package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrLinesAreRequired     = errors.New("at least one order line is required")
)

// OrderLine carries the raw input for a single order line.
// Full validation happens in the domain layer when the line is turned
// into an order item.
type OrderLine struct {
	ProductID string
	ItemID    *kernel.UUID
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents a request to place a new customer order.
// Encapsulates the purchasing customer and the requested order lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	lines := []OrderLine{{ProductID: "PROD-001", Quantity: 2, UnitPrice: 25.99}}
//	cmd, err := NewCreateOrderCommand(orderID, "customer-42", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting validation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer id is not empty,
// and at least one line is present. Line contents are validated by the
// domain layer.
func NewCreateOrderCommand(orderID kernel.UUID, customerID string, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the purchasing customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
