package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RequestRefundCommandHandler handles the business logic for refund requests.
// Only paid orders are refundable, and at most one refund may be pending per
// order. The refund amount is snapshotted from the order's total cost at
// request time; later price changes never alter a pending refund. The order
// is parked on Hold while staff review.
type RequestRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	notifier   Notifier
}

// NewRequestRefundCommandHandler creates a handler for refund requests.
func NewRequestRefundCommandHandler(uowFactory RefundUoWFactory, notifier Notifier) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the refund request command.
func (h RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
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

	aggregate, err := uow.OrderRepository().GetForSeller(ctx, cmd.OrderID(), cmd.SellerID())
	if err != nil {
		return err
	}

	if err = aggregate.ValidateRefundable(); err != nil {
		return err
	}

	pending, err := uow.RefundRepository().HasPending(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if pending {
		return errs.NewConflictError("refund", aggregate.ID().String())
	}

	newRefund, err := refund.NewRefund(
		cmd.RefundID(),
		aggregate.ID(),
		cmd.SellerID(),
		aggregate.TotalCost(),
		cmd.Reason(),
		cmd.ProofURL(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	aggregate.Hold()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.RefundRepository().Add(ctx, newRefund); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	payload := OrderStatusPayload{
		OrderID: aggregate.ID().String(),
		Code:    aggregate.Code(),
		Status:  aggregate.Status().String(),
	}
	h.notifier.Broadcast(ctx, ports.GroupStaffRequests, EventRefundRequested, payload)
	h.notifier.Broadcast(ctx, ports.OrderGroup(aggregate.ID()), EventOrderStatusChanged, payload)

	return nil
}
