package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingCancellation(t *testing.T, aggregate *order.Order, previous order.Status) *cancellation.Request {
	t.Helper()
	request, err := cancellation.NewRequest(
		kernel.NewUUID(), aggregate.ID(), aggregate.SellerID(),
		"customer changed their mind", previous, time.Now().UTC(),
	)
	require.NoError(t, err)
	return request
}

func TestReviewCancellationCommandHandler_Handle_ApproveInProduction(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusHold, order.Unpaid,
		restoredItem(t, "mug", order.ItemInProd))
	request := pendingCancellation(t, aggregate, order.StatusInProduction)

	staffID := kernel.NewUUID()
	cmd, err := commands.NewReviewCancellationCommand(aggregate.ID(), staffID, true, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	cancellationRepo := new(MockCancellationRepository)
	planRepo := new(MockPlanRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("CancellationRepository").Return(cancellationRepo).Twice()
	uow.On("PlanRepository").Return(planRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		cancellationRepo.On("GetPendingByOrder", mock.Anything, aggregate.ID()).Return(request, nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		planRepo.On("DeleteDetailsForOrder", mock.Anything, aggregate.ID()).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		cancellationRepo.On("Update", mock.Anything, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Notify", mock.Anything,
		request.RequestedBy(), mock.Anything, mock.Anything).Return(nil).Once()
	dispatcher.On("BroadcastToGroup", mock.Anything,
		ports.GroupStaffReviewed, commands.EventCancellationReviewed, mock.Anything).Return(nil).Once()
	dispatcher.On("BroadcastToGroup", mock.Anything,
		"order_"+aggregate.ID().String(), commands.EventOrderStatusChanged, mock.Anything).Return(nil).Once()

	h := commands.NewReviewCancellationCommandHandler(factory, notifierFor(dispatcher))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, cancellation.Approved, request.Status())
	require.Equal(t, order.StatusCancelled, aggregate.Status())
	require.Equal(t, order.LabelCancelledWithFee, aggregate.ProductionLabel())
	// fee is base cost times quantity of the single item
	require.Equal(t, 16.0, aggregate.TotalCost())

	orderRepo.AssertExpectations(t)
	cancellationRepo.AssertExpectations(t)
	planRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestReviewCancellationCommandHandler_Handle_OrderNotOnHold(t *testing.T) {
	ctx := t.Context()
	// a reprint submitted after the cancellation request re-parked the order
	aggregate := restoredOrder(t, "GIFT-100", order.StatusHoldReprint, order.Unpaid,
		restoredItem(t, "mug", order.ItemHoldReprint))
	request := pendingCancellation(t, aggregate, order.StatusConfirmed)

	cmd, err := commands.NewReviewCancellationCommand(aggregate.ID(), kernel.NewUUID(), true, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	cancellationRepo := new(MockCancellationRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CancellationRepository").Return(cancellationRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		cancellationRepo.On("GetPendingByOrder", mock.Anything, aggregate.ID()).Return(request, nil).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewCancellationCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	require.Equal(t, cancellation.Pending, request.Status())
	require.Equal(t, order.StatusHoldReprint, aggregate.Status())

	orderRepo.AssertExpectations(t)
	cancellationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewCancellationCommandHandler_Handle_ApprovePreProduction(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusHold, order.Unpaid,
		restoredItem(t, "mug", order.ItemReadyProd))
	request := pendingCancellation(t, aggregate, order.StatusConfirmed)

	cmd, err := commands.NewReviewCancellationCommand(aggregate.ID(), kernel.NewUUID(), true, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	cancellationRepo := new(MockCancellationRepository)
	planRepo := new(MockPlanRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("CancellationRepository").Return(cancellationRepo).Twice()
	uow.On("PlanRepository").Return(planRepo).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	cancellationRepo.On("GetPendingByOrder", mock.Anything, aggregate.ID()).Return(request, nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	planRepo.On("DeleteDetailsForOrder", mock.Anything, aggregate.ID()).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	cancellationRepo.On("Update", mock.Anything, request).Return(nil).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewCancellationCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.StatusCancelled, aggregate.Status())
	require.Equal(t, order.LabelCancelled, aggregate.ProductionLabel())
	require.Equal(t, 0.0, aggregate.TotalCost())
}

func TestReviewCancellationCommandHandler_Handle_RejectRestoresStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusHold, order.Unpaid,
		restoredItem(t, "mug", order.ItemReadyProd))
	request := pendingCancellation(t, aggregate, order.StatusConfirmed)

	staffID := kernel.NewUUID()
	cmd, err := commands.NewReviewCancellationCommand(aggregate.ID(), staffID, false, "order already in production")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	cancellationRepo := new(MockCancellationRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("CancellationRepository").Return(cancellationRepo).Twice()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	cancellationRepo.On("GetPendingByOrder", mock.Anything, aggregate.ID()).Return(request, nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	cancellationRepo.On("Update", mock.Anything, request).Return(nil).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewCancellationCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, cancellation.Rejected, request.Status())
	require.Equal(t, "order already in production", request.RejectionReason())
	require.Equal(t, order.StatusConfirmed, aggregate.Status())

	orderRepo.AssertExpectations(t)
	cancellationRepo.AssertExpectations(t)
}

func TestReviewCancellationCommandHandler_Handle_NoPendingRequest(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReviewCancellationCommand(orderID, kernel.NewUUID(), true, "")
	require.NoError(t, err)

	cancellationRepo := new(MockCancellationRepository)
	uow := new(MockUoW)
	uow.On("CancellationRepository").Return(cancellationRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		cancellationRepo.On("GetPendingByOrder", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("cancellation request", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewCancellationCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
