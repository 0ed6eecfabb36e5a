package kernel_test

import (
	"errors"
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		assert.NoError(t, guard.Validate(customError))

		// Nil error falls back to the default
		assert.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()
		customError := errors.New("not constructed")

		err := guard.Validate(customError)

		assert.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := guard.Validate(expectedError)

		assert.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var guard kernel.ConstructorGuard // zero value

		err := guard.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_GuardedKernelTypes verifies the guard through the
// kernel's own value objects instead of synthetic examples.
func TestConstructorGuard_GuardedKernelTypes(t *testing.T) {
	t.Run("constructed_money_passes_validation", func(t *testing.T) {
		money, err := kernel.NewMoneyFromFloat(10.50)

		require.NoError(t, err)
		assert.NoError(t, money.Validate())
	})

	t.Run("zero_value_money_fails_validation", func(t *testing.T) {
		var money kernel.Money

		err := money.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("constructed_price_passes_validation", func(t *testing.T) {
		price, err := kernel.NewPriceFromFloat(10.50, "EUR")

		require.NoError(t, err)
		assert.NoError(t, price.Validate())
	})

	t.Run("zero_value_price_fails_validation", func(t *testing.T) {
		var price kernel.Price

		err := price.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

// TestConstructorGuard_DefaultError verifies the default error message.
func TestConstructorGuard_DefaultError(t *testing.T) {
	require.Error(t, kernel.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", kernel.ErrDefaultConstructorGuard.Error())
}
