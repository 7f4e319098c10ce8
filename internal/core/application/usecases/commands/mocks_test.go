package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/domain/model/reprint"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForSeller(ctx context.Context, id, sellerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemIDs(ctx context.Context, itemIDs []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCancellationRepository struct{ mock.Mock }

func (m *MockCancellationRepository) Add(ctx context.Context, request *cancellation.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCancellationRepository) Update(ctx context.Context, request *cancellation.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockCancellationRepository) GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*cancellation.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancellation.Request), args.Error(1)
}

func (m *MockCancellationRepository) HasPending(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, rf *refund.Refund) error {
	args := m.Called(ctx, rf)
	return args.Error(0)
}

func (m *MockRefundRepository) Update(ctx context.Context, rf *refund.Refund) error {
	args := m.Called(ctx, rf)
	return args.Error(0)
}

func (m *MockRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Refund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refund.Refund), args.Error(1)
}

func (m *MockRefundRepository) HasPending(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockReprintRepository struct{ mock.Mock }

func (m *MockReprintRepository) Add(ctx context.Context, rp *reprint.Reprint) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func (m *MockReprintRepository) Update(ctx context.Context, rp *reprint.Reprint) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func (m *MockReprintRepository) GetPendingByItems(ctx context.Context, itemIDs []kernel.UUID) ([]*reprint.Reprint, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reprint.Reprint), args.Error(1)
}

func (m *MockReprintRepository) HasPendingByItem(ctx context.Context, itemID kernel.UUID) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

type MockPlanRepository struct{ mock.Mock }

func (m *MockPlanRepository) Add(ctx context.Context, aggregate *plan.Plan) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPlanRepository) PlannedItemIDs(ctx context.Context, itemIDs []kernel.UUID) (map[kernel.UUID]bool, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]bool), args.Error(1)
}

func (m *MockPlanRepository) UpdateDetailStatus(ctx context.Context, detailID kernel.UUID, status plan.DetailStatus) (bool, error) {
	args := m.Called(ctx, detailID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanRepository) DeleteDetailsForOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Append(ctx context.Context, event *shipment.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockShipmentRepository) ListByTrackingCode(ctx context.Context, trackingCode string) ([]*shipment.Event, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Event), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) HasActiveInvoice(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockUoW implements every composite unit-of-work interface so each workflow
// test wires only the repositories it expects to be touched.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CancellationRepository() ports.CancellationRepository {
	args := m.Called()
	return args.Get(0).(ports.CancellationRepository)
}

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

func (m *MockUoW) ReprintRepository() ports.ReprintRepository {
	args := m.Called()
	return args.Get(0).(ports.ReprintRepository)
}

func (m *MockUoW) PlanRepository() ports.PlanRepository {
	args := m.Called()
	return args.Get(0).(ports.PlanRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCancellationUoWFactory struct{ mock.Mock }

func (m *MockCancellationUoWFactory) Create() commands.CancellationUoW {
	args := m.Called()
	return args.Get(0).(commands.CancellationUoW)
}

type MockRefundUoWFactory struct{ mock.Mock }

func (m *MockRefundUoWFactory) Create() commands.RefundUoW {
	args := m.Called()
	return args.Get(0).(commands.RefundUoW)
}

type MockReprintUoWFactory struct{ mock.Mock }

func (m *MockReprintUoWFactory) Create() commands.ReprintUoW {
	args := m.Called()
	return args.Get(0).(commands.ReprintUoW)
}

type MockPlanningUoWFactory struct{ mock.Mock }

func (m *MockPlanningUoWFactory) Create() commands.PlanningUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanningUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Notify(ctx context.Context, userID kernel.UUID, message, deepLink string) error {
	args := m.Called(ctx, userID, message, deepLink)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) BroadcastToGroup(ctx context.Context, group, event string, payload any) error {
	args := m.Called(ctx, group, event, payload)
	return args.Error(0)
}

// noopNotifier returns a Notifier with delivery disabled.
func noopNotifier() commands.Notifier {
	return commands.NewNotifier(nil, nil)
}

// notifierFor returns a Notifier delivering through the given mock dispatcher.
func notifierFor(dispatcher *MockNotificationDispatcher) commands.Notifier {
	return commands.NewNotifier(dispatcher, nil)
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Jane Roe", "+1-202-555-0134", "12 Main St", "79", "760", "26734")
	require.NoError(t, err)
	return customer
}

func restoredItem(t *testing.T, category string, status order.ItemStatus) *order.Item {
	t.Helper()
	item, err := order.RestoreItem(
		kernel.NewUUID(), category+"-variant", category, 2, 25.0, 8.0,
		status, nil, order.Artifacts{}, "",
	)
	require.NoError(t, err)
	return item
}

func restoredOrder(
	t *testing.T,
	code string,
	status order.Status,
	paymentStatus order.PaymentStatus,
	items ...*order.Item,
) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), code, kernel.NewUUID(), testCustomer(t),
		status, paymentStatus, status.String(), 50.0, "", items,
	)
	require.NoError(t, err)
	return aggregate
}
