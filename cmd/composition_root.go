package cmd

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	notifier     commands.Notifier
	systemUserID kernel.UUID
	logger       *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	systemUserID, err := kernel.UUIDFromString(config.SystemUserID)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid SYSTEM_USER_ID: %w", err)
	}

	dispatcher := notifier.NewRedisNotificationDispatcher(gormDB, redisClient)

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:     commands.NewNotifier(dispatcher, logger),
		systemUserID: systemUserID,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdvanceItemStatusCommandHandler() commands.AdvanceItemStatusCommandHandler {
	return commands.NewAdvanceItemStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGroupSubmittedOrdersCommandHandler() commands.GroupSubmittedOrdersCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGroupSubmittedOrdersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdatePlanDetailStatusCommandHandler() commands.UpdatePlanDetailStatusCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePlanDetailStatusCommandHandler(f)
}

func (c *CompositionRoot) cancellationUoWFactory() commands.CancellationUoWFactory {
	return FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRequestCancellationCommandHandler() commands.RequestCancellationCommandHandler {
	return commands.NewRequestCancellationCommandHandler(c.cancellationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReviewCancellationCommandHandler() commands.ReviewCancellationCommandHandler {
	return commands.NewReviewCancellationCommandHandler(c.cancellationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) refundUoWFactory() commands.RefundUoWFactory {
	return FuncRefundUoWFactory(func() commands.RefundUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	return commands.NewRequestRefundCommandHandler(c.refundUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReviewRefundCommandHandler() commands.ReviewRefundCommandHandler {
	return commands.NewReviewRefundCommandHandler(c.refundUoWFactory(), c.notifier)
}

func (c *CompositionRoot) reprintUoWFactory() commands.ReprintUoWFactory {
	return FuncReprintUoWFactory(func() commands.ReprintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitReprintCommandHandler() commands.SubmitReprintCommandHandler {
	return commands.NewSubmitReprintCommandHandler(c.reprintUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApproveReprintCommandHandler() commands.ApproveReprintCommandHandler {
	return commands.NewApproveReprintCommandHandler(
		c.reprintUoWFactory(),
		services.NewReprintOrderFactory(),
		c.notifier,
	)
}

func (c *CompositionRoot) CreateRejectReprintCommandHandler() commands.RejectReprintCommandHandler {
	return commands.NewRejectReprintCommandHandler(c.reprintUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRecordShipmentEventCommandHandler() commands.RecordShipmentEventCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordShipmentEventCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCancellationsQueryHandler() queries.GetPendingCancellationsQueryHandler {
	return queries.NewGetPendingCancellationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRefundsQueryHandler() queries.GetPendingRefundsQueryHandler {
	return queries.NewGetPendingRefundsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentEventsQueryHandler() queries.GetShipmentEventsQueryHandler {
	return queries.NewGetShipmentEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGroupSubmittedOrdersCommandHandler(),
		c.systemUserID,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type FuncRefundUoWFactory func() commands.RefundUoW

func (f FuncRefundUoWFactory) Create() commands.RefundUoW {
	return f()
}

type FuncReprintUoWFactory func() commands.ReprintUoW

func (f FuncReprintUoWFactory) Create() commands.ReprintUoW {
	return f()
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
