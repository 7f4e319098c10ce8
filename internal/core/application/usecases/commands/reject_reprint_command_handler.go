package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RejectReprintCommandHandler handles the manager rejection of a reprint
// batch. Every pending reprint of the batch is rejected and the flagged items
// return to the Shipped state together with their order.
type RejectReprintCommandHandler struct {
	uowFactory ReprintUoWFactory
	notifier   Notifier
}

// NewRejectReprintCommandHandler creates a handler for reprint rejections.
func NewRejectReprintCommandHandler(uowFactory ReprintUoWFactory, notifier Notifier) RejectReprintCommandHandler {
	return RejectReprintCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reprint rejection command.
func (h RejectReprintCommandHandler) Handle(ctx context.Context, cmd RejectReprintCommand) error {
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

	reprints, err := uow.ReprintRepository().GetPendingByItems(ctx, cmd.ItemIDs())
	if err != nil {
		return err
	}

	covered := make(map[kernel.UUID]bool, len(reprints))
	for _, request := range reprints {
		covered[request.ItemID()] = true
	}
	for _, itemID := range cmd.ItemIDs() {
		if !covered[itemID] {
			return errs.NewObjectNotFoundError("pending reprint", itemID.String())
		}
	}

	owners, err := uow.OrderRepository().GetByItemIDs(ctx, cmd.ItemIDs())
	if err != nil {
		return err
	}
	if len(owners) != 1 {
		return errs.NewInvalidStateError("reject reprint batch", "items belong to different orders")
	}
	aggregate := owners[0]

	for _, request := range reprints {
		if err = request.Reject(cmd.ManagerID(), cmd.RejectionReason()); err != nil {
			return err
		}
		if err = aggregate.RestoreItemFromReprint(request.ItemID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	for _, request := range reprints {
		if err = uow.ReprintRepository().Update(ctx, request); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyUser(ctx, aggregate.SellerID(),
		fmt.Sprintf("Your reprint request for order %s was rejected: %s",
			aggregate.Code(), cmd.RejectionReason()),
		"/orders/"+aggregate.ID().String())
	h.notifier.Broadcast(ctx, ports.GroupStaffReviewed, EventReprintReviewed, OrderStatusPayload{
		OrderID: aggregate.ID().String(),
		Code:    aggregate.Code(),
		Status:  aggregate.Status().String(),
	})

	return nil
}
