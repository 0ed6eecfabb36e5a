package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateItemCommand(id, "Wireless Mouse Pro", "Now with 8 buttons", 29.99, "EUR", "Electronics")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "Wireless Mouse Pro", cmd.Name())
	assert.Equal(t, "Now with 8 buttons", cmd.Description())
	assert.InEpsilon(t, 29.99, cmd.Price(), 0.0001)
	assert.Equal(t, "EUR", cmd.Currency())
	assert.Equal(t, "Electronics", cmd.Category())
}

func TestNewUpdateItemCommand_OptionalFieldsMayBeEmpty(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateItemCommand(id, "Wireless Mouse", "", 29.99, "", "Electronics")
	require.NoError(t, err)
	assert.Empty(t, cmd.Description())
	assert.Empty(t, cmd.Currency())
}

func TestNewUpdateItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewUpdateItemCommand(invalidID, "Wireless Mouse", "", 29.99, "", "Electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateItemCommand_MissingAttributes(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewUpdateItemCommand(id, "", "", 29.99, "", "Electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)

	_, err = commands.NewUpdateItemCommand(id, "Wireless Mouse", "", 29.99, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCategoryIsRequired)
}

func TestNewUpdateItemCommand_InvalidPrice(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewUpdateItemCommand(id, "Wireless Mouse", "", 0, "", "Electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)

	_, err = commands.NewUpdateItemCommand(id, "Wireless Mouse", "", -5.00, "", "Electronics")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestUpdateItemCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.UpdateItemCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateItemCommandIsNotConstructed)
}
