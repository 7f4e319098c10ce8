package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/reprint"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitReprintCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := restoredItem(t, "mug", order.ItemShipped)
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipped, order.Paid, item)

	cmd, err := commands.NewSubmitReprintCommand(
		kernel.NewUUID(), item.ID(), kernel.NewUUID(),
		"print smeared on delivery", "https://blob.example.com/proof/2.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reprintRepo := new(MockReprintRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("ReprintRepository").Return(reprintRepo).Twice()

	var persisted *reprint.Reprint
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByItemID", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		reprintRepo.On("HasPendingByItem", mock.Anything, item.ID()).Return(false, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		reprintRepo.On("Add", mock.Anything, mock.AnythingOfType("*reprint.Reprint")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*reprint.Reprint)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReprintUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReprintCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.ItemHoldReprint, item.Status())
	require.Equal(t, order.StatusHoldReprint, aggregate.Status())
	require.NotNil(t, persisted)
	require.Equal(t, reprint.Pending, persisted.Status())
	require.Equal(t, item.ID(), persisted.ItemID())
	require.Equal(t, aggregate.ID(), persisted.OrderID())

	orderRepo.AssertExpectations(t)
	reprintRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitReprintCommandHandler_Handle_PendingConflict(t *testing.T) {
	ctx := t.Context()
	item := restoredItem(t, "mug", order.ItemShipped)
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipped, order.Paid, item)

	cmd, err := commands.NewSubmitReprintCommand(
		kernel.NewUUID(), item.ID(), kernel.NewUUID(), "print smeared on delivery", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reprintRepo := new(MockReprintRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ReprintRepository").Return(reprintRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByItemID", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		reprintRepo.On("HasPendingByItem", mock.Anything, item.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReprintUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReprintCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, order.ItemShipped, item.Status())
}

func TestSubmitReprintCommandHandler_Handle_AlreadyFlagged(t *testing.T) {
	ctx := t.Context()
	item := restoredItem(t, "mug", order.ItemHoldReprint)
	aggregate := restoredOrder(t, "GIFT-100", order.StatusHoldReprint, order.Paid, item)

	cmd, err := commands.NewSubmitReprintCommand(
		kernel.NewUUID(), item.ID(), kernel.NewUUID(), "print smeared on delivery", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reprintRepo := new(MockReprintRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ReprintRepository").Return(reprintRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByItemID", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		reprintRepo.On("HasPendingByItem", mock.Anything, item.ID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReprintUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReprintCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}
