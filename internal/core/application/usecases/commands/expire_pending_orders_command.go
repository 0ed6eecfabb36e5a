package commands

import (
	"errors"
	"time"

	"commerce/internal/pkg/guard"
)

var (
	ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
		"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
	)
	ErrWindowIsInvalid = errors.New("window must be greater than 0")
)

// ExpirePendingOrdersCommand triggers cancellation of stale pending orders.
// Every order still in "Pending" status after the window has passed gets
// cancelled in one batch.
//
// Example:
//
//	cmd, _ := NewExpirePendingOrdersCommand(30 * time.Minute)
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory)
//
//	// Run periodically to keep the backlog clean
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("expiration sweep failed: %w", err)
//	}
//	log.Printf("cancelled %d stale orders", expired)
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to expire stale pending orders.
// Validates that the window is positive.
func NewExpirePendingOrdersCommand(window time.Duration) (ExpirePendingOrdersCommand, error) {
	command := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWindow(window); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// Window returns how long an order may stay pending before it expires.
func (c ExpirePendingOrdersCommand) Window() time.Duration {
	return c.window
}

func (c *ExpirePendingOrdersCommand) setWindow(window time.Duration) error {
	if window <= 0 {
		return ErrWindowIsInvalid
	}

	c.window = window
	return nil
}
