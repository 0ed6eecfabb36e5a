package item_test

import (
	"strings"
	"testing"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSKU(t *testing.T) {
	t.Run("should create SKU from a valid code", func(t *testing.T) {
		sku, err := item.NewSKU("PROD-001")

		require.NoError(t, err)
		assert.NoError(t, sku.Validate())
		assert.Equal(t, "PROD-001", sku.Value())
		assert.Equal(t, "PROD-001", sku.String())
	})

	t.Run("should accept codes at the boundaries", func(t *testing.T) {
		testCases := []struct {
			name string
			code string
		}{
			{"single character", "A"},
			{"digits only", "12345"},
			{"hyphen separated", "ABC-123-XYZ"},
			{"maximum length", strings.Repeat("A", 50)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				sku, err := item.NewSKU(tc.code)

				require.NoError(t, err)
				assert.Equal(t, tc.code, sku.Value())
			})
		}
	})

	t.Run("should return error for empty code", func(t *testing.T) {
		_, err := item.NewSKU("")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "sku")
	})

	t.Run("should return error for overlong code", func(t *testing.T) {
		_, err := item.NewSKU(strings.Repeat("A", 51))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})

	t.Run("should return error for disallowed characters", func(t *testing.T) {
		for _, code := range []string{"prod-001", "PROD_001", "PROD 001", "PROD.001", "PRÖD-001"} {
			_, err := item.NewSKU(code)

			require.Error(t, err, "code %q should be rejected", code)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "sku is invalid")
		}
	})
}

func TestSKU_IsEqual(t *testing.T) {
	t.Run("should treat identical codes as equal", func(t *testing.T) {
		a, _ := item.NewSKU("PROD-001")
		b, _ := item.NewSKU("PROD-001")

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should treat different codes as not equal", func(t *testing.T) {
		a, _ := item.NewSKU("PROD-001")
		b, _ := item.NewSKU("PROD-002")

		assert.False(t, a.IsEqual(b))
	})
}

func TestSKU_Validate(t *testing.T) {
	t.Run("should pass for a constructed SKU", func(t *testing.T) {
		sku, _ := item.NewSKU("PROD-001")
		assert.NoError(t, sku.Validate())
	})

	t.Run("should fail for the zero value", func(t *testing.T) {
		var sku item.SKU

		err := sku.Validate()

		require.Error(t, err)
		assert.Equal(t, item.ErrSKUIsNotConstructed, err)
	})
}
