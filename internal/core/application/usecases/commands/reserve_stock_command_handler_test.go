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

func restoreStockedItem(t *testing.T, available, reserved int) *item.Item {
	t.Helper()

	sku, err := item.NewSKU("PROD-001")
	require.NoError(t, err)
	price, err := kernel.NewPriceFromFloat(25.99, "")
	require.NoError(t, err)
	stock, err := item.NewStockLevel(available, reserved)
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := item.RestoreItem(
		kernel.NewUUID(), sku, "Wireless Mouse", "", price, stock, "Electronics", true, now, now, 3,
	)
	require.NoError(t, err)
	return aggregate
}

func TestReserveStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReserveStockCommand("PROD-001", 30)
	aggregate := restoreStockedItem(t, 100, 0)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetBySKU", mock.Anything, mock.AnythingOfType("item.SKU")).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, 70, aggregate.StockLevel().Available())
	assert.Equal(t, 30, aggregate.StockLevel().Reserved())
	assert.Equal(t, 4, aggregate.Version())
}

func TestReserveStockCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReserveStockCommand("PROD-001", 20)
	aggregate := restoreStockedItem(t, 10, 0)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetBySKU", mock.Anything, mock.AnythingOfType("item.SKU")).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// The failed reservation leaves the stock level untouched.
	assert.Equal(t, 10, aggregate.StockLevel().Available())
	assert.Zero(t, aggregate.StockLevel().Reserved())
	assert.Equal(t, 3, aggregate.Version())
}

func TestReserveStockCommandHandler_Handle_MalformedSKU(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReserveStockCommand("prod 001", 30)
	require.NoError(t, err)

	factory := new(MockItemUoWFactory)
	h := commands.NewReserveStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestReserveStockCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReserveStockCommand("PROD-001", 30)

	notFound := errs.NewObjectNotFoundError("sku", "PROD-001")
	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetBySKU", mock.Anything, mock.AnythingOfType("item.SKU")).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCommitStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCommitStockCommand("PROD-001", 30)
	aggregate := restoreStockedItem(t, 70, 30)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetBySKU", mock.Anything, mock.AnythingOfType("item.SKU")).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCommitStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, 70, aggregate.StockLevel().Available())
	assert.Zero(t, aggregate.StockLevel().Reserved())
}

func TestAdjustStockCommandHandler_Handle_InactiveItem(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdjustStockCommand("PROD-001", 50)

	sku, err := item.NewSKU("PROD-001")
	require.NoError(t, err)
	price, err := kernel.NewPriceFromFloat(25.99, "")
	require.NoError(t, err)
	stock, err := item.NewStockLevel(100, 0)
	require.NoError(t, err)
	now := time.Now().UTC()
	aggregate, err := item.RestoreItem(
		kernel.NewUUID(), sku, "Wireless Mouse", "", price, stock, "Electronics", false, now, now, 3,
	)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetBySKU", mock.Anything, mock.AnythingOfType("item.SKU")).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdjustStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, 100, aggregate.StockLevel().Available())
}
