package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from a non-negative amount", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.RequireFromString("25.99"))

		require.NoError(t, err)
		assert.NoError(t, money.Validate())
		assert.Equal(t, "25.99", money.String())
	})

	t.Run("should allow a zero amount", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, money.IsZero())
		assert.False(t, money.IsPositive())
	})

	t.Run("should round to two decimal places on construction", func(t *testing.T) {
		testCases := []struct {
			name     string
			amount   string
			expected string
		}{
			{"rounds down below midpoint", "25.994", "25.99"},
			{"rounds half away from zero", "25.995", "26.00"},
			{"rounds up above midpoint", "25.996", "26.00"},
			{"keeps two places untouched", "25.99", "25.99"},
			{"pads missing places", "25.9", "25.90"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				money, err := kernel.NewMoney(decimal.RequireFromString(tc.amount))

				require.NoError(t, err)
				assert.Equal(t, tc.expected, money.String())
			})
		}
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Error(t, money.Validate())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should create money from a float amount", func(t *testing.T) {
		money, err := kernel.NewMoneyFromFloat(25.99)

		require.NoError(t, err)
		assert.Equal(t, "25.99", money.String())
	})

	t.Run("should reject a negative float amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-1.50)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(20.00)
		b, _ := kernel.NewMoneyFromFloat(15.50)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "35.50", sum.String())
	})

	t.Run("should not mutate the operands", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(20.00)
		b, _ := kernel.NewMoneyFromFloat(15.50)

		_, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "20.00", a.String())
		assert.Equal(t, "15.50", b.String())
	})

	t.Run("should reject an unconstructed receiver", func(t *testing.T) {
		var a kernel.Money
		b, _ := kernel.NewMoneyFromFloat(15.50)

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("should reject an unconstructed operand", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(15.50)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_MultiplyBy(t *testing.T) {
	t.Run("should scale the amount by a positive quantity", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromFloat(10.00)

		total, err := unitPrice.MultiplyBy(3)

		require.NoError(t, err)
		assert.Equal(t, "30.00", total.String())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromFloat(10.00)

		for _, quantity := range []int{0, -1, -100} {
			_, err := unitPrice.MultiplyBy(quantity)

			require.Error(t, err, "quantity %d should be rejected", quantity)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should reject an unconstructed receiver", func(t *testing.T) {
		var money kernel.Money

		_, err := money.MultiplyBy(2)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should treat equal amounts as equal", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(10.50)
		b, _ := kernel.NewMoney(decimal.RequireFromString("10.5"))

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should treat different amounts as not equal", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(10.50)
		b, _ := kernel.NewMoneyFromFloat(10.51)

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should pass for constructed money", func(t *testing.T) {
		money, _ := kernel.NewMoneyFromFloat(1.00)
		assert.NoError(t, money.Validate())
	})

	t.Run("should fail for the zero value", func(t *testing.T) {
		var money kernel.Money

		err := money.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
