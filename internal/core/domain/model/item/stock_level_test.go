package item_test

import (
	"testing"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStockLevel(t *testing.T, available, reserved int) item.StockLevel {
	t.Helper()
	stock, err := item.NewStockLevel(available, reserved)
	require.NoError(t, err)
	return stock
}

func TestNewStockLevel(t *testing.T) {
	t.Run("should create stock level with valid quantities", func(t *testing.T) {
		stock, err := item.NewStockLevel(100, 30)

		require.NoError(t, err)
		assert.NoError(t, stock.Validate())
		assert.Equal(t, 100, stock.Available())
		assert.Equal(t, 30, stock.Reserved())
		assert.Equal(t, 130, stock.Total())
	})

	t.Run("should allow both quantities to be zero", func(t *testing.T) {
		stock, err := item.NewStockLevel(0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, stock.Total())
	})

	t.Run("should return error for negative available", func(t *testing.T) {
		_, err := item.NewStockLevel(-1, 0)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "available is invalid")
	})

	t.Run("should return error for negative reserved", func(t *testing.T) {
		_, err := item.NewStockLevel(0, -1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "reserved is invalid")
	})
}

func TestStockLevel_Reserve(t *testing.T) {
	t.Run("should move quantity from available to reserved", func(t *testing.T) {
		stock := createStockLevel(t, 100, 0)

		next, err := stock.Reserve(30)

		require.NoError(t, err)
		assert.Equal(t, 70, next.Available())
		assert.Equal(t, 30, next.Reserved())
		assert.Equal(t, 100, next.Total())
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		stock := createStockLevel(t, 100, 0)

		_, err := stock.Reserve(30)

		require.NoError(t, err)
		assert.Equal(t, 100, stock.Available())
		assert.Equal(t, 0, stock.Reserved())
	})

	t.Run("should allow reserving the entire available quantity", func(t *testing.T) {
		stock := createStockLevel(t, 10, 5)

		next, err := stock.Reserve(10)

		require.NoError(t, err)
		assert.Equal(t, 0, next.Available())
		assert.Equal(t, 15, next.Reserved())
	})

	t.Run("should reject reserving more than available", func(t *testing.T) {
		stock := createStockLevel(t, 10, 0)

		_, err := stock.Reserve(20)

		require.Error(t, err)
		assert.IsType(t, &errs.BusinessRuleError{}, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "cannot reserve more than available")
		assert.Equal(t, 10, stock.Available())
		assert.Equal(t, 0, stock.Reserved())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		stock := createStockLevel(t, 10, 0)

		for _, quantity := range []int{0, -5} {
			_, err := stock.Reserve(quantity)

			require.Error(t, err, "quantity %d should be rejected", quantity)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})
}

func TestStockLevel_Release(t *testing.T) {
	t.Run("should move quantity from reserved back to available", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		next, err := stock.Release(30)

		require.NoError(t, err)
		assert.Equal(t, 100, next.Available())
		assert.Equal(t, 0, next.Reserved())
		assert.Equal(t, 100, next.Total())
	})

	t.Run("should undo a prior reservation exactly", func(t *testing.T) {
		stock := createStockLevel(t, 100, 0)

		reserved, err := stock.Reserve(25)
		require.NoError(t, err)

		released, err := reserved.Release(25)
		require.NoError(t, err)

		assert.True(t, released.IsEqual(stock))
	})

	t.Run("should reject releasing more than reserved", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		_, err := stock.Release(31)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "cannot release more than reserved")
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		_, err := stock.Release(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestStockLevel_Commit(t *testing.T) {
	t.Run("should remove quantity from reserved and leave available unchanged", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		next, err := stock.Commit(30)

		require.NoError(t, err)
		assert.Equal(t, 70, next.Available())
		assert.Equal(t, 0, next.Reserved())
		assert.Equal(t, 70, next.Total())
	})

	t.Run("should support a partial commit", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		next, err := stock.Commit(10)

		require.NoError(t, err)
		assert.Equal(t, 70, next.Available())
		assert.Equal(t, 20, next.Reserved())
	})

	t.Run("should reject committing more than reserved", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		_, err := stock.Commit(31)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "cannot commit more than reserved")
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		_, err := stock.Commit(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestStockLevel_Adjust(t *testing.T) {
	t.Run("should overwrite available and leave reserved unchanged", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		next, err := stock.Adjust(50)

		require.NoError(t, err)
		assert.Equal(t, 50, next.Available())
		assert.Equal(t, 30, next.Reserved())
	})

	t.Run("should allow adjusting to zero", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		next, err := stock.Adjust(0)

		require.NoError(t, err)
		assert.Equal(t, 0, next.Available())
		assert.Equal(t, 30, next.Reserved())
	})

	t.Run("should reject a negative quantity", func(t *testing.T) {
		stock := createStockLevel(t, 70, 30)

		_, err := stock.Adjust(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "available is invalid")
	})
}

func TestStockLevel_ReserveCommitFlow(t *testing.T) {
	t.Run("should track a reservation through to commit", func(t *testing.T) {
		stock := createStockLevel(t, 100, 0)

		reserved, err := stock.Reserve(30)
		require.NoError(t, err)
		assert.Equal(t, 70, reserved.Available())
		assert.Equal(t, 30, reserved.Reserved())

		committed, err := reserved.Commit(30)
		require.NoError(t, err)
		assert.Equal(t, 70, committed.Available())
		assert.Equal(t, 0, committed.Reserved())
		assert.Equal(t, 70, committed.Total())
	})
}

func TestStockLevel_Validate(t *testing.T) {
	t.Run("should pass for a constructed stock level", func(t *testing.T) {
		stock := createStockLevel(t, 1, 0)
		assert.NoError(t, stock.Validate())
	})

	t.Run("should fail for the zero value", func(t *testing.T) {
		var stock item.StockLevel

		err := stock.Validate()

		require.Error(t, err)
		assert.Equal(t, item.ErrStockLevelIsNotConstructed, err)
	})

	t.Run("should reject transitions on the zero value", func(t *testing.T) {
		var stock item.StockLevel

		_, err := stock.Reserve(1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), item.ErrStockLevelIsNotConstructed.Error())
	})
}

// FuzzStockLevelTransitions checks that no sequence of accepted transitions
// can produce negative quantities or break the total accounting.
func FuzzStockLevelTransitions(f *testing.F) {
	f.Add(100, 0, 30)
	f.Add(10, 5, 20)
	f.Add(0, 0, 1)
	f.Add(1, 1, 1)

	f.Fuzz(func(t *testing.T, available int, reserved int, quantity int) {
		stock, err := item.NewStockLevel(available, reserved)
		if err != nil {
			if available >= 0 && reserved >= 0 {
				t.Fatalf("construction rejected non-negative quantities %d/%d: %v", available, reserved, err)
			}
			return
		}

		if next, err := stock.Reserve(quantity); err == nil {
			if quantity <= 0 || quantity > available {
				t.Fatalf("Reserve(%d) accepted with available %d", quantity, available)
			}
			if next.Available() < 0 || next.Reserved() < 0 {
				t.Fatalf("Reserve(%d) produced negative quantities %d/%d", quantity, next.Available(), next.Reserved())
			}
			if next.Total() != stock.Total() {
				t.Fatalf("Reserve(%d) changed total from %d to %d", quantity, stock.Total(), next.Total())
			}

			roundTrip, err := next.Release(quantity)
			if err != nil {
				t.Fatalf("Release(%d) after Reserve(%d) failed: %v", quantity, quantity, err)
			}
			if !roundTrip.IsEqual(stock) {
				t.Fatalf("Reserve(%d) then Release(%d) did not restore %v, got %v", quantity, quantity, stock, roundTrip)
			}

			committed, err := next.Commit(quantity)
			if err != nil {
				t.Fatalf("Commit(%d) after Reserve(%d) failed: %v", quantity, quantity, err)
			}
			if committed.Available() != next.Available() {
				t.Fatalf("Commit(%d) changed available from %d to %d", quantity, next.Available(), committed.Available())
			}
			if committed.Total() != stock.Total()-quantity {
				t.Fatalf("Commit(%d) total is %d, want %d", quantity, committed.Total(), stock.Total()-quantity)
			}
		}

		if next, err := stock.Release(quantity); err == nil {
			if quantity <= 0 || quantity > reserved {
				t.Fatalf("Release(%d) accepted with reserved %d", quantity, reserved)
			}
			if next.Total() != stock.Total() {
				t.Fatalf("Release(%d) changed total from %d to %d", quantity, stock.Total(), next.Total())
			}
		}

		if next, err := stock.Commit(quantity); err == nil {
			if quantity <= 0 || quantity > reserved {
				t.Fatalf("Commit(%d) accepted with reserved %d", quantity, reserved)
			}
			if next.Available() != available {
				t.Fatalf("Commit(%d) changed available from %d to %d", quantity, available, next.Available())
			}
		}

		if next, err := stock.Adjust(quantity); err == nil {
			if quantity < 0 {
				t.Fatalf("Adjust(%d) accepted a negative quantity", quantity)
			}
			if next.Available() != quantity || next.Reserved() != reserved {
				t.Fatalf("Adjust(%d) produced %d/%d, want %d/%d", quantity, next.Available(), next.Reserved(), quantity, reserved)
			}
		}
	})
}
