package item

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrStockLevelIsNotConstructed indicates that the StockLevel was not properly
// initialized through the NewStockLevel constructor function.
var ErrStockLevelIsNotConstructed = errs.NewValueIsRequiredError("StockLevel must be created via NewStockLevel constructor")

// StockLevel partitions an item's physical stock into an available portion and
// a reserved portion. It is an immutable value object: every transition returns
// a new StockLevel and leaves the receiver untouched.
//
// Invariants held by every constructed StockLevel:
//   - available ≥ 0
//   - reserved ≥ 0
//   - Total() == available + reserved
//
// Transitions move quantity between the two portions or out of the pool:
//   - Reserve moves quantity from available to reserved
//   - Release moves quantity from reserved back to available
//   - Commit removes quantity from reserved (stock leaves the warehouse)
//   - Adjust overwrites available after a manual recount
//
// Example usage:
//
//	stock, _ := item.NewStockLevel(100, 0)
//	stock, err := stock.Reserve(30) // available 70, reserved 30
//	if err != nil {
//	    return err
//	}
//	stock, err = stock.Commit(30) // available 70, reserved 0
type StockLevel struct {
	// available is the quantity free to be reserved
	available int

	// reserved is the quantity held for orders but not yet committed
	reserved int

	// guard ensures the value object was properly initialized
	guard kernel.ConstructorGuard
}

// NewStockLevel creates a StockLevel with the given available and reserved
// quantities. Both quantities must be non-negative.
//
// Parameters:
//   - available: Quantity free to be reserved (must be ≥ 0)
//   - reserved: Quantity already held for orders (must be ≥ 0)
//
// Returns:
//   - StockLevel: Properly initialized stock level value object
//   - error: Validation error if either quantity is negative
func NewStockLevel(available int, reserved int) (StockLevel, error) {
	if available < 0 {
		return StockLevel{}, errs.NewValueIsInvalidErrorWithCause(
			"available is invalid",
			fmt.Errorf("%d is negative", available),
		)
	}

	if reserved < 0 {
		return StockLevel{}, errs.NewValueIsInvalidErrorWithCause(
			"reserved is invalid",
			fmt.Errorf("%d is negative", reserved),
		)
	}

	return StockLevel{
		available: available,
		reserved:  reserved,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Available returns the quantity free to be reserved.
func (s StockLevel) Available() int {
	return s.available
}

// Reserved returns the quantity held for orders but not yet committed.
func (s StockLevel) Reserved() int {
	return s.reserved
}

// Total returns the full physical stock, available plus reserved.
func (s StockLevel) Total() int {
	return s.available + s.reserved
}

// Reserve moves quantity from the available portion to the reserved portion.
//
// Business rules enforced:
//   - Quantity must be positive
//   - Quantity must not exceed the available portion
//
// Returns the resulting StockLevel, leaving the receiver unchanged.
func (s StockLevel) Reserve(quantity int) (StockLevel, error) {
	if err := errors.Join(s.Validate(), validateQuantity(quantity)); err != nil {
		return StockLevel{}, err
	}

	if quantity > s.available {
		return StockLevel{}, errs.NewBusinessRuleErrorWithCause(
			"cannot reserve more than available",
			fmt.Errorf("requested %d, available %d", quantity, s.available),
		)
	}

	return NewStockLevel(s.available-quantity, s.reserved+quantity)
}

// Release moves quantity from the reserved portion back to the available
// portion, undoing a prior reservation.
//
// Business rules enforced:
//   - Quantity must be positive
//   - Quantity must not exceed the reserved portion
//
// Returns the resulting StockLevel, leaving the receiver unchanged.
func (s StockLevel) Release(quantity int) (StockLevel, error) {
	if err := errors.Join(s.Validate(), validateQuantity(quantity)); err != nil {
		return StockLevel{}, err
	}

	if quantity > s.reserved {
		return StockLevel{}, errs.NewBusinessRuleErrorWithCause(
			"cannot release more than reserved",
			fmt.Errorf("requested %d, reserved %d", quantity, s.reserved),
		)
	}

	return NewStockLevel(s.available+quantity, s.reserved-quantity)
}

// Commit removes quantity from the reserved portion, recording that the stock
// physically left the warehouse. The available portion is unchanged.
//
// Business rules enforced:
//   - Quantity must be positive
//   - Quantity must not exceed the reserved portion
//
// Returns the resulting StockLevel, leaving the receiver unchanged.
func (s StockLevel) Commit(quantity int) (StockLevel, error) {
	if err := errors.Join(s.Validate(), validateQuantity(quantity)); err != nil {
		return StockLevel{}, err
	}

	if quantity > s.reserved {
		return StockLevel{}, errs.NewBusinessRuleErrorWithCause(
			"cannot commit more than reserved",
			fmt.Errorf("requested %d, reserved %d", quantity, s.reserved),
		)
	}

	return NewStockLevel(s.available, s.reserved-quantity)
}

// Adjust overwrites the available portion after a manual inventory recount.
// The reserved portion is unchanged.
//
// Business rules enforced:
//   - The new available quantity must be non-negative
//
// Returns the resulting StockLevel, leaving the receiver unchanged.
func (s StockLevel) Adjust(newAvailable int) (StockLevel, error) {
	if err := s.Validate(); err != nil {
		return StockLevel{}, err
	}

	return NewStockLevel(newAvailable, s.reserved)
}

// IsEqual compares two stock levels by their available and reserved portions.
func (s StockLevel) IsEqual(other StockLevel) bool {
	return s.available == other.available && s.reserved == other.reserved
}

// String renders the stock level as "available/reserved" for logging.
func (s StockLevel) String() string {
	return fmt.Sprintf("%d available, %d reserved", s.available, s.reserved)
}

// Validate checks if the StockLevel was properly constructed via NewStockLevel.
// The zero value of StockLevel is invalid and fails this validation.
func (s StockLevel) Validate() error {
	return s.guard.Validate(ErrStockLevelIsNotConstructed)
}

// validateQuantity rejects non-positive transition quantities.
func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
