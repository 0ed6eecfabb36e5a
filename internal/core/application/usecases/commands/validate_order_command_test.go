package commands_test

import (
	"strings"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewValidateOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewValidateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewValidateOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewProcessOrderPaymentCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewProcessOrderPaymentCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeliverOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewDeliverOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id, "customer changed their mind")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "customer changed their mind", cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyReasonAllowed(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewCancelOrderCommand_LongReasonAccepted(t *testing.T) {
	// The command carries the reason as-is; the length bound is enforced
	// by the order aggregate when the cancellation is applied.
	id := kernel.NewUUID()
	longReason := strings.Repeat("x", 600)
	cmd, err := commands.NewCancelOrderCommand(id, longReason)
	require.NoError(t, err)
	assert.Equal(t, longReason, cmd.Reason())
}

func TestValidateOrderCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.ValidateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrValidateOrderCommandIsNotConstructed)
}

func TestProcessOrderPaymentCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.ProcessOrderPaymentCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProcessOrderPaymentCommandIsNotConstructed)
}

func TestDeliverOrderCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.DeliverOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliverOrderCommandIsNotConstructed)
}
