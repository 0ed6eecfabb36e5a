package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReserveStockCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewReserveStockCommand("PROD-001", 30)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", cmd.SKU())
	assert.Equal(t, 30, cmd.Quantity())
}

func TestNewReserveStockCommand_EmptySKU(t *testing.T) {
	_, err := commands.NewReserveStockCommand("", 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSKUIsRequired)
}

func TestNewReserveStockCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewReserveStockCommand("PROD-001", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewReserveStockCommand("PROD-001", -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewAdjustStockCommand_Boundaries(t *testing.T) {
	cmd, err := commands.NewAdjustStockCommand("PROD-001", 0)
	require.NoError(t, err)
	assert.Zero(t, cmd.NewAvailable())

	_, err = commands.NewAdjustStockCommand("PROD-001", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNewAvailableIsInvalid)
}
