package commands

import (
	"context"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/core/ports"
)

// GroupSubmittedOrdersCommandHandler handles the business logic for production
// plan grouping. One run collects every ReadyProd item of every Confirmed
// order that is not yet linked to a plan detail, creates one plan per product
// category, and advances each touched order to Planned.
//
// The run is idempotent: items already linked to a detail are skipped, and an
// order already Planned is not loaded again.
type GroupSubmittedOrdersCommandHandler struct {
	uowFactory PlanningUoWFactory
	notifier   Notifier
}

// NewGroupSubmittedOrdersCommandHandler creates a handler for plan grouping.
func NewGroupSubmittedOrdersCommandHandler(uowFactory PlanningUoWFactory, notifier Notifier) GroupSubmittedOrdersCommandHandler {
	return GroupSubmittedOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the grouping command.
func (h GroupSubmittedOrdersCommandHandler) Handle(ctx context.Context, cmd GroupSubmittedOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	submitted, err := uow.OrderRepository().GetAllInStatus(ctx, order.StatusConfirmed)
	if err != nil {
		return err
	}
	if len(submitted) == 0 {
		return uow.Commit(ctx)
	}

	itemIDs := make([]kernel.UUID, 0)
	for _, aggregate := range submitted {
		for _, item := range aggregate.Items() {
			if item.Status() == order.ItemReadyProd {
				itemIDs = append(itemIDs, item.ID())
			}
		}
	}

	alreadyPlanned, err := uow.PlanRepository().PlannedItemIDs(ctx, itemIDs)
	if err != nil {
		return err
	}

	buckets := make(map[string][]kernel.UUID)
	touched := make([]*order.Order, 0, len(submitted))
	for _, aggregate := range submitted {
		contributed := false
		for _, item := range aggregate.Items() {
			if item.Status() != order.ItemReadyProd || alreadyPlanned[item.ID()] {
				continue
			}
			buckets[item.Category()] = append(buckets[item.Category()], item.ID())
			contributed = true
		}
		if contributed {
			touched = append(touched, aggregate)
		}
	}

	categories := make([]string, 0, len(buckets))
	for category := range buckets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	now := time.Now().UTC()
	for _, category := range categories {
		workBatch, err := plan.NewPlan(kernel.NewUUID(), category, cmd.CreatedBy(), now, now)
		if err != nil {
			return err
		}
		for _, itemID := range buckets[category] {
			if _, err = workBatch.AddDetail(kernel.NewUUID(), itemID); err != nil {
				return err
			}
		}
		if err = uow.PlanRepository().Add(ctx, workBatch); err != nil {
			return err
		}
	}

	// Only orders that placed an item into a plan advance to Planned; an
	// order whose ReadyProd items were all grouped by an earlier run is left
	// as it is.
	for _, aggregate := range touched {
		if err = aggregate.MarkPlanned(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.GroupStaffRequests, EventPlansGrouped, PlansGroupedPayload{
		Plans:  len(categories),
		Orders: len(touched),
	})

	return nil
}
