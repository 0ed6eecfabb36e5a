package kernel

import (
	"fmt"
	"regexp"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a price is created without an explicit
// currency code.
const DefaultCurrency = "USD"

// ErrPriceIsNotConstructed indicates that a Price was not initialized through
// one of the constructor functions.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice or NewPriceFromFloat")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Price is the item-context monetary value: an amount plus a currency code.
// Unlike Money it is explicit about currency because catalog items may be
// priced independently of any order.
//
// The amount is rounded to two decimal places on construction and may not be
// negative. An empty currency defaults to DefaultCurrency; a supplied one
// must be a three-letter uppercase code. Price is immutable.
type Price struct {
	amount   decimal.Decimal
	currency string
	guard    ConstructorGuard
}

// NewPrice creates a Price from a decimal amount and an optional currency code.
func NewPrice(amount decimal.Decimal, currency string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount),
		)
	}

	if currency == "" {
		currency = DefaultCurrency
	} else if !currencyPattern.MatchString(currency) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"currency is invalid",
			fmt.Errorf("%q is not a three-letter uppercase code", currency),
		)
	}

	return Price{
		amount:   amount.Round(2),
		currency: currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// NewPriceFromFloat creates a Price from a float amount and an optional currency code.
func NewPriceFromFloat(amount float64, currency string) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount), currency)
}

// Amount returns the decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Currency returns the three-letter currency code.
func (p Price) Currency() string {
	return p.currency
}

// IsEqual reports whether both prices carry the same amount and currency.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount) && p.currency == other.currency
}

// IsZero reports whether the amount is exactly zero.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// String renders the price as "25.99 USD".
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.amount.StringFixed(2), p.currency)
}

// Validate checks that the Price came from a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
