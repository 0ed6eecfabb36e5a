package item

import (
	"fmt"
	"regexp"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// maxSKULength is the maximum number of characters allowed in a SKU.
const maxSKULength = 50

// skuPattern restricts SKUs to uppercase letters, digits and hyphens.
var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// ErrSKUIsNotConstructed indicates that the SKU was not properly initialized
// through the NewSKU constructor function.
var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSKU constructor")

// SKU is the stock keeping unit code that identifies an item in catalogs and
// warehouse systems. It is a value object compared by its code, not by identity.
//
// A valid SKU is non-empty, at most 50 characters long, and consists only of
// uppercase letters, digits and hyphens (for example "PROD-001").
//
// Example usage:
//
//	sku, err := item.NewSKU("PROD-001")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sku.Value()) // "PROD-001"
type SKU struct {
	// value is the normalized SKU code
	value string

	// guard ensures the value object was properly initialized
	guard kernel.ConstructorGuard
}

// NewSKU creates a SKU value object from the given code.
// This is the only way to create a properly initialized SKU instance.
//
// Parameters:
//   - value: The SKU code (non-empty, ≤50 chars, matching ^[A-Z0-9-]+$)
//
// Returns:
//   - SKU: Properly initialized SKU value object
//   - error: Validation error describing the first violated constraint
func NewSKU(value string) (SKU, error) {
	if value == "" {
		return SKU{}, errs.NewValueIsRequiredError("sku")
	}

	if len(value) > maxSKULength {
		return SKU{}, errs.NewValueIsOutOfRangeError("sku", value, 1, maxSKULength)
	}

	if !skuPattern.MatchString(value) {
		return SKU{}, errs.NewValueIsInvalidErrorWithCause(
			"sku is invalid",
			fmt.Errorf("%q contains characters outside A-Z, 0-9 and hyphen", value),
		)
	}

	return SKU{
		value: value,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Value returns the SKU code.
func (s SKU) Value() string {
	return s.value
}

// IsEqual compares two SKUs by their code.
func (s SKU) IsEqual(other SKU) bool {
	return s.value == other.value
}

// String returns the SKU code for logging and display purposes.
func (s SKU) String() string {
	return s.value
}

// Validate checks if the SKU was properly constructed via NewSKU.
// The zero value of SKU is invalid and fails this validation.
func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}
