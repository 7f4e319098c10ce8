package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ApproveReprintCommandHandler handles the manager approval of a reprint
// batch. In one transaction: every pending reprint of the batch is approved,
// a new zero-priced order mirroring the flagged items is spawned with the
// next reprint-version code, and the original order moves to ReprintIssued.
type ApproveReprintCommandHandler struct {
	uowFactory     ReprintUoWFactory
	reprintFactory *services.ReprintOrderFactory
	notifier       Notifier
}

// NewApproveReprintCommandHandler creates a handler for reprint approvals.
func NewApproveReprintCommandHandler(
	uowFactory ReprintUoWFactory,
	reprintFactory *services.ReprintOrderFactory,
	notifier Notifier,
) ApproveReprintCommandHandler {
	return ApproveReprintCommandHandler{
		uowFactory:     uowFactory,
		reprintFactory: reprintFactory,
		notifier:       notifier,
	}
}

// Handle processes the reprint approval command.
func (h ApproveReprintCommandHandler) Handle(ctx context.Context, cmd ApproveReprintCommand) error {
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
		return errs.NewInvalidStateError("approve reprint batch", "items belong to different orders")
	}
	original := owners[0]

	for _, request := range reprints {
		if err = request.Approve(cmd.ManagerID()); err != nil {
			return err
		}
	}

	spawned, err := h.reprintFactory.Build(kernel.NewUUID(), original, reprints)
	if err != nil {
		return err
	}

	original.MarkReprintIssued()

	if err = uow.OrderRepository().Add(ctx, spawned); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, original); err != nil {
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

	h.notifier.NotifyUser(ctx, original.SellerID(),
		fmt.Sprintf("Reprint order %s was issued for order %s", spawned.Code(), original.Code()),
		"/orders/"+spawned.ID().String())
	h.notifier.Broadcast(ctx, ports.GroupStaffReviewed, EventReprintReviewed, OrderStatusPayload{
		OrderID: spawned.ID().String(),
		Code:    spawned.Code(),
		Status:  spawned.Status().String(),
	})

	return nil
}
