package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderItemsCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderItemsCommand(id, validOrderLines())
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Len(t, cmd.Lines(), 2)
}

func TestNewUpdateOrderItemsCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewUpdateOrderItemsCommand(invalidID, validOrderLines())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderItemsCommand_NoLines(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateOrderItemsCommand(id, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLinesAreRequired)
}

func TestUpdateOrderItemsCommand_LinesReturnsCopy(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderItemsCommand(id, validOrderLines())
	require.NoError(t, err)

	lines := cmd.Lines()
	lines[0].ProductID = "tampered"

	assert.Equal(t, "PROD-001", cmd.Lines()[0].ProductID)
}
