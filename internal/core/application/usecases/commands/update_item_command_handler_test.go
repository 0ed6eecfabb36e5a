package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreStockedItem(t, 100, 0)
	cmd, _ := commands.NewUpdateItemCommand(aggregate.ID(), "Wireless Mouse Pro", "Now with 8 buttons", 34.99, "EUR", "Peripherals")

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

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, "Wireless Mouse Pro", aggregate.Name())
	assert.Equal(t, "Now with 8 buttons", aggregate.Description())
	assert.Equal(t, "34.99 EUR", aggregate.Price().String())
	assert.Equal(t, "Peripherals", aggregate.Category())
	assert.Equal(t, 4, aggregate.Version())

	events := aggregate.Events()
	require.Len(t, events, 1)
	assert.Equal(t, item.ItemUpdatedEventName, events[0].EventName())
}

func TestUpdateItemCommandHandler_Handle_NoChanges(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreStockedItem(t, 100, 0)
	// Identical attributes, so the aggregate treats the call as a no-op
	cmd, _ := commands.NewUpdateItemCommand(aggregate.ID(), "Wireless Mouse", "", 25.99, "", "Electronics")

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

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// The version stays put and no event is raised.
	assert.Equal(t, 3, aggregate.Version())
	assert.Empty(t, aggregate.Events())
}

func TestUpdateItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemCommand(id, "Wireless Mouse", "", 25.99, "", "Electronics")

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

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_MalformedCurrency(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateItemCommand(kernel.NewUUID(), "Wireless Mouse", "", 25.99, "EURO", "Electronics")
	require.NoError(t, err)

	// Currency format is checked by the domain before any transaction starts.
	factory := new(MockItemUoWFactory)
	h := commands.NewUpdateItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
