package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/reprint"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SubmitReprintCommandHandler handles the business logic for reprint
// requests. The flagged item and its order are parked on HoldReprint while a
// manager reviews; at most one reprint may be pending per item.
type SubmitReprintCommandHandler struct {
	uowFactory ReprintUoWFactory
	notifier   Notifier
}

// NewSubmitReprintCommandHandler creates a handler for reprint requests.
func NewSubmitReprintCommandHandler(uowFactory ReprintUoWFactory, notifier Notifier) SubmitReprintCommandHandler {
	return SubmitReprintCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reprint request command.
func (h SubmitReprintCommandHandler) Handle(ctx context.Context, cmd SubmitReprintCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	pending, err := uow.ReprintRepository().HasPendingByItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if pending {
		return errs.NewConflictError("reprint request", cmd.ItemID().String())
	}

	if err = aggregate.FlagItemForReprint(cmd.ItemID()); err != nil {
		return err
	}

	request, err := reprint.NewReprint(
		cmd.ReprintID(),
		cmd.ItemID(),
		aggregate.ID(),
		cmd.Reason(),
		cmd.RequestedBy(),
		cmd.ProofURL(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.ReprintRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.GroupStaffRequests, EventReprintRequested, OrderStatusPayload{
		OrderID: aggregate.ID().String(),
		Code:    aggregate.Code(),
		Status:  aggregate.Status().String(),
	})

	return nil
}
