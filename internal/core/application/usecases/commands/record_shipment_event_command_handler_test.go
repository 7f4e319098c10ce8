package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordShipmentEventCommandHandler_Handle_AppendOnly(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordShipmentEventCommand(
		"VN123456789", "InTransit", "left sorting facility", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()

	var recorded *shipment.Event
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Append", mock.Anything, mock.AnythingOfType("*shipment.Event")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*shipment.Event)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentEventCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, recorded)
	require.Equal(t, "VN123456789", recorded.TrackingCode())
	require.Equal(t, "InTransit", recorded.Status())

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordShipmentEventCommandHandler_Handle_StampsTrackingCode(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "GIFT-100", order.StatusShipping, order.Paid,
		restoredItem(t, "mug", order.ItemShipping))
	orderID := aggregate.ID()

	cmd, err := commands.NewRecordShipmentEventCommand(
		"VN123456789", "PickedUp", "", &orderID)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Append", mock.Anything, mock.AnythingOfType("*shipment.Event")).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentEventCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, "VN123456789", aggregate.TrackingCode())

	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordShipmentEventCommandHandler_Handle_SkipsStampWhenUnchanged(t *testing.T) {
	ctx := t.Context()
	item := restoredItem(t, "mug", order.ItemShipping)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "GIFT-100", kernel.NewUUID(), testCustomer(t),
		order.StatusShipping, order.Paid, order.StatusShipping.String(),
		50.0, "VN123456789", []*order.Item{item},
	)
	require.NoError(t, err)
	orderID := aggregate.ID()

	cmd, err := commands.NewRecordShipmentEventCommand(
		"VN123456789", "InTransit", "", &orderID)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("Append", mock.Anything, mock.AnythingOfType("*shipment.Event")).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentEventCommandHandler(factory, noopNotifier())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordShipmentEventCommandHandler_Handle_RequiresTrackingCode(t *testing.T) {
	_, err := commands.NewRecordShipmentEventCommand("", "InTransit", "", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
