package commands_test

import (
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreItemWithActivity(t *testing.T, isActive bool) *item.Item {
	t.Helper()

	sku, err := item.NewSKU("PROD-001")
	require.NoError(t, err)
	price, err := kernel.NewPriceFromFloat(25.99, "")
	require.NoError(t, err)
	stock, err := item.NewStockLevel(100, 0)
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := item.RestoreItem(
		kernel.NewUUID(), sku, "Wireless Mouse", "", price, stock, "Electronics", isActive, now, now, 3,
	)
	require.NoError(t, err)
	return aggregate
}

func TestNewActivateItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewActivateItemCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeactivateItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewDeactivateItemCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestActivateItemCommandHandler_Handle_InactiveItem(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreItemWithActivity(t, false)
	cmd, _ := commands.NewActivateItemCommand(aggregate.ID())

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.True(t, aggregate.IsActive())
	assert.Equal(t, 4, aggregate.Version())

	events := aggregate.Events()
	require.Len(t, events, 1)
	assert.Equal(t, item.ItemActivatedEventName, events[0].EventName())
}

func TestActivateItemCommandHandler_Handle_AlreadyActive(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreItemWithActivity(t, true)
	cmd, _ := commands.NewActivateItemCommand(aggregate.ID())

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// Activating an active item is a silent no-op.
	assert.True(t, aggregate.IsActive())
	assert.Equal(t, 3, aggregate.Version())
	assert.Empty(t, aggregate.Events())
}

func TestDeactivateItemCommandHandler_Handle_ActiveItem(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreItemWithActivity(t, true)
	cmd, _ := commands.NewDeactivateItemCommand(aggregate.ID())

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.False(t, aggregate.IsActive())
	assert.Equal(t, 4, aggregate.Version())

	events := aggregate.Events()
	require.Len(t, events, 1)
	assert.Equal(t, item.ItemDeactivatedEventName, events[0].EventName())
}

func TestDeactivateItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeactivateItemCommand(id)

	notFound := errs.NewObjectNotFoundError("item", id.String())
	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeactivateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
