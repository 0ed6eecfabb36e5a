package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Creates new orders in "Pending" status with the total computed from the lines.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	lines := []OrderLine{{ProductID: "PROD-001", Quantity: 2, UnitPrice: 25.99}}
//	cmd, _ := NewCreateOrderCommand(orderID, "customer-42", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and ready for validation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Builds the order lines, creates the order in "Pending" status, and persists it.
// Uses transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildOrderItems(cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildOrderItems converts raw line inputs into order items.
// Each line gets a fresh identity; unit prices flow through Money construction
// so rounding and sign rules apply before the order ever sees the line.
func buildOrderItems(lines []OrderLine) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		unitPrice, err := kernel.NewMoneyFromFloat(line.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(kernel.NewUUID(), line.ProductID, line.ItemID, line.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
