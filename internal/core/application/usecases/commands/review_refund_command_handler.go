package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ReviewRefundCommandHandler handles the staff decision on a pending refund.
// Approval marks the order Refunded and records an opaque gateway reference;
// the actual money movement happens outside this core. Rejection restores the
// Shipped code: refunds are raised after delivery, so there is no earlier
// production status to return to.
type ReviewRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	notifier   Notifier
}

// NewReviewRefundCommandHandler creates a handler for refund reviews.
func NewReviewRefundCommandHandler(uowFactory RefundUoWFactory, notifier Notifier) ReviewRefundCommandHandler {
	return ReviewRefundCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the refund review command.
func (h ReviewRefundCommandHandler) Handle(ctx context.Context, cmd ReviewRefundCommand) error {
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

	pendingRefund, err := uow.RefundRepository().Get(ctx, cmd.RefundID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, pendingRefund.OrderID())
	if err != nil {
		return err
	}

	var message string
	if cmd.Approved() {
		if err = pendingRefund.Approve(cmd.StaffID(), "manual/"+pendingRefund.ID().String()); err != nil {
			return err
		}
		aggregate.MarkRefunded()
		message = fmt.Sprintf("Your refund request for order %s was approved (amount: %.2f)",
			aggregate.Code(), pendingRefund.Amount())
	} else {
		if err = pendingRefund.Reject(cmd.StaffID(), cmd.RejectionReason()); err != nil {
			return err
		}
		if err = aggregate.RestoreStatus(order.StatusShipped); err != nil {
			return err
		}
		message = fmt.Sprintf("Your refund request for order %s was rejected: %s",
			aggregate.Code(), cmd.RejectionReason())
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.RefundRepository().Update(ctx, pendingRefund); err != nil {
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
	h.notifier.NotifyUser(ctx, pendingRefund.RequestedBy(), message, "/orders/"+aggregate.ID().String())
	h.notifier.Broadcast(ctx, ports.GroupStaffReviewed, EventRefundReviewed, payload)
	h.notifier.Broadcast(ctx, ports.OrderGroup(aggregate.ID()), EventOrderStatusChanged, payload)

	return nil
}
