package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed indicates that the OrderItem was not
// properly initialized through the NewOrderItem constructor function.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem represents a single line of an order: a product reference, the
// ordered quantity and the unit price captured at ordering time. It is an
// entity owned by exactly one Order and never shared between orders.
//
// The product is referenced two ways: productID carries the legacy catalog
// identifier that older upstream systems still send, and itemID optionally
// links the line to an Item aggregate when the product exists in the catalog.
//
// Key business rules:
//   - Must be constructed through NewOrderItem
//   - Quantity must be positive
//   - Unit price must be strictly positive
//   - The line total is always unit price times quantity
type OrderItem struct {
	// id uniquely identifies the order line
	id kernel.UUID

	// productID is the legacy catalog identifier of the ordered product
	productID string

	// itemID optionally links the line to an Item aggregate, nil if unlinked
	itemID *kernel.UUID

	// quantity is the number of units ordered
	quantity int

	// unitPrice is the per-unit price captured at ordering time
	unitPrice kernel.Money

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewOrderItem creates a new OrderItem entity with the specified parameters.
// This is the only way to create a properly initialized OrderItem instance,
// both for fresh lines and when reconstructing them from storage.
//
// Parameters:
//   - id: Unique identifier for the order line (must be valid UUID)
//   - productID: Legacy catalog identifier (must not be empty)
//   - itemID: Optional link to an Item aggregate (nil if unlinked)
//   - quantity: Number of units ordered (must be greater than 0)
//   - unitPrice: Per-unit price (must be constructed and strictly positive)
//
// Returns:
//   - *OrderItem: Properly initialized order line entity
//   - error: Aggregated validation errors, if any
func NewOrderItem(
	id kernel.UUID,
	productID string,
	itemID *kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*OrderItem, error) {
	orderItem := &OrderItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderItem.setID(id),
		orderItem.setProductID(productID),
		orderItem.setItemID(itemID),
		orderItem.setQuantity(quantity),
		orderItem.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return orderItem, nil
}

// IsEqual compares two order lines for equality based on their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unique identifier of the order line.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the legacy catalog identifier of the ordered product.
func (i *OrderItem) ProductID() string {
	return i.productID
}

// ItemID returns the linked Item aggregate's ID.
// Returns nil if the line is not linked to a catalog item.
func (i *OrderItem) ItemID() *kernel.UUID {
	return i.itemID
}

// Quantity returns the number of units ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at ordering time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the line total, unit price times quantity.
func (i *OrderItem) TotalPrice() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return i.unitPrice.MultiplyBy(i.quantity)
}

// setID sets the order line's unique identifier with validation.
// This is an internal setter used during construction.
func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

// setProductID sets the legacy catalog identifier with validation.
// This is an internal setter used during construction.
func (i *OrderItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	i.productID = productID
	return nil
}

// setItemID sets the optional link to an Item aggregate.
// This is an internal setter used during construction.
func (i *OrderItem) setItemID(itemID *kernel.UUID) error {
	if itemID != nil {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	i.itemID = itemID
	return nil
}

// setQuantity sets the ordered quantity with validation.
// This is an internal setter used during construction.
func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

// setUnitPrice sets the per-unit price with validation.
// This is an internal setter used during construction.
func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	i.unitPrice = unitPrice
	return nil
}

// Validate checks if the OrderItem was properly constructed via NewOrderItem.
// The zero value of OrderItem is invalid and fails this validation.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}
