package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// ShipOrderCommand represents a request to hand a paid order to the carrier.
// Moves the order from "Paid" to "Shipped" and records the tracking number.
//
// Example:
//
//	cmd, err := NewShipOrderCommand(orderID, "TRACK-123")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewShipOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to ship order: %w", err)
//	}
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship a paid order.
// Validates that the order ID is valid and the tracking number is not empty.
func NewShipOrderCommand(orderID kernel.UUID, trackingNumber string) (ShipOrderCommand, error) {
	command := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTrackingNumber(trackingNumber),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipOrderCommandIsNotConstructed if validation fails.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the carrier tracking number for the shipment.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
