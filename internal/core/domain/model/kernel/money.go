package kernel

import (
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not initialized
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or NewMoneyFromFloat")

// Money is a single-currency monetary amount used in the order context.
// All money flowing through one order shares the same implicit currency, so
// Money carries only the amount.
//
// The amount is rounded to two decimal places on construction and may not be
// negative. Money is immutable; arithmetic returns new values.
//
// Example:
//
//	unitPrice, err := kernel.NewMoneyFromFloat(25.99)
//	if err != nil {
//	    // handle error
//	}
//	lineTotal, err := unitPrice.MultiplyBy(3)
type Money struct {
	amount decimal.Decimal
	guard  ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount is rounded to two decimal places; negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{
		amount: amount.Round(2),
		guard:  NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float amount.
// Convenience for boundaries that deliver JSON numbers.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount))
}

// MultiplyBy returns the Money value scaled by a positive integer quantity.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual reports whether both Money values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two decimal places, e.g. "25.99".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value came from a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
