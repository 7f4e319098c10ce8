package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AdvanceItemStatusCommandHandler handles the business logic for design-phase
// item transitions. Loads the full aggregate, validates the edge against the
// adjacency set, and re-derives the order-level status.
type AdvanceItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewAdvanceItemStatusCommandHandler creates a handler for item transitions.
func NewAdvanceItemStatusCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) AdvanceItemStatusCommandHandler {
	return AdvanceItemStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the item transition command.
func (h AdvanceItemStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceItemStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceItem(cmd.ItemID(), cmd.NewStatus()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.OrderGroup(aggregate.ID()), EventOrderStatusChanged, OrderStatusPayload{
		OrderID: aggregate.ID().String(),
		Code:    aggregate.Code(),
		Status:  aggregate.Status().String(),
	})

	return nil
}
