package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestRefundCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipped, order.Paid,
		restoredItem(t, "mug", order.ItemShipped))

	cmd, err := commands.NewRequestRefundCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.SellerID(),
		"item arrived damaged", "https://blob.example.com/proof/1.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	refundRepo := new(MockRefundRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("RefundRepository").Return(refundRepo).Twice()

	var persisted *refund.Refund
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForSeller", mock.Anything, aggregate.ID(), aggregate.SellerID()).
			Return(aggregate, nil).Once(),
		refundRepo.On("HasPending", mock.Anything, aggregate.ID()).Return(false, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		refundRepo.On("Add", mock.Anything, mock.AnythingOfType("*refund.Refund")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*refund.Refund)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("BroadcastToGroup", mock.Anything,
		ports.GroupStaffRequests, commands.EventRefundRequested, mock.Anything).Return(nil).Once()
	dispatcher.On("BroadcastToGroup", mock.Anything,
		"order_"+aggregate.ID().String(), commands.EventOrderStatusChanged, mock.Anything).Return(nil).Once()

	h := commands.NewRequestRefundCommandHandler(factory, notifierFor(dispatcher))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.StatusHold, aggregate.Status())
	require.NotNil(t, persisted)
	require.Equal(t, refund.Pending, persisted.Status())
	// the amount is snapshotted from the order's total cost at request time
	require.Equal(t, 50.0, persisted.Amount())
	require.Equal(t, "https://blob.example.com/proof/1.jpg", persisted.ProofURL())

	orderRepo.AssertExpectations(t)
	refundRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestRequestRefundCommandHandler_Handle_NotPaid(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipped, order.Unpaid,
		restoredItem(t, "mug", order.ItemShipped))

	cmd, err := commands.NewRequestRefundCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.SellerID(), "item arrived damaged", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForSeller", mock.Anything, aggregate.ID(), aggregate.SellerID()).
			Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestRefundCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, order.StatusShipped, aggregate.Status())
}

func TestRequestRefundCommandHandler_Handle_PendingConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipped, order.Paid,
		restoredItem(t, "mug", order.ItemShipped))

	cmd, err := commands.NewRequestRefundCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.SellerID(), "item arrived damaged", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	refundRepo := new(MockRefundRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RefundRepository").Return(refundRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForSeller", mock.Anything, aggregate.ID(), aggregate.SellerID()).
			Return(aggregate, nil).Once(),
		refundRepo.On("HasPending", mock.Anything, aggregate.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestRefundCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
}
