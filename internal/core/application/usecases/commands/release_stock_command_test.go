package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleaseStockCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewReleaseStockCommand("PROD-001", 10)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", cmd.SKU())
	assert.Equal(t, 10, cmd.Quantity())
}

func TestNewReleaseStockCommand_EmptySKU(t *testing.T) {
	_, err := commands.NewReleaseStockCommand("", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSKUIsRequired)
}

func TestNewReleaseStockCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewReleaseStockCommand("PROD-001", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewReleaseStockCommand("PROD-001", -3)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewCommitStockCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCommitStockCommand("PROD-001", 5)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", cmd.SKU())
	assert.Equal(t, 5, cmd.Quantity())
}

func TestNewCommitStockCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCommitStockCommand("", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSKUIsRequired)

	_, err = commands.NewCommitStockCommand("PROD-001", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestReleaseStockCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.ReleaseStockCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReleaseStockCommandIsNotConstructed)
}
