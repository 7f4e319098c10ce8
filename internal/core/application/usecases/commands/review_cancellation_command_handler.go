package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ReviewCancellationCommandHandler handles the staff decision on a pending
// cancellation request. Approval finalizes the cancellation: the snapshotted
// previous status decides whether the manufacturing fee is charged, every
// item moves to Canceled, and plan details of the order are purged. Rejection
// restores the snapshotted status.
type ReviewCancellationCommandHandler struct {
	uowFactory CancellationUoWFactory
	notifier   Notifier
}

// NewReviewCancellationCommandHandler creates a handler for cancellation reviews.
func NewReviewCancellationCommandHandler(
	uowFactory CancellationUoWFactory,
	notifier Notifier,
) ReviewCancellationCommandHandler {
	return ReviewCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation review command.
func (h ReviewCancellationCommandHandler) Handle(ctx context.Context, cmd ReviewCancellationCommand) error {
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

	request, err := uow.CancellationRepository().GetPendingByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// A later workflow may have re-parked the order elsewhere (for example a
	// reprint hold). Only an order still parked on Hold can be reviewed here.
	if aggregate.Status() != order.StatusHold {
		return errs.NewInvalidStateError("review cancellation", aggregate.Status().String())
	}

	now := time.Now().UTC()
	var message string
	if cmd.Approved() {
		if err = request.Approve(cmd.StaffID(), now); err != nil {
			return err
		}
		fee := aggregate.ApplyCancellation(request.PreviousStatus())
		if err = uow.PlanRepository().DeleteDetailsForOrder(ctx, aggregate.ID()); err != nil {
			return err
		}
		message = fmt.Sprintf("Your cancellation request for order %s was approved (fee: %.2f)",
			aggregate.Code(), fee)
	} else {
		if err = request.Reject(cmd.StaffID(), cmd.RejectionReason(), now); err != nil {
			return err
		}
		if err = aggregate.RestoreStatus(request.PreviousStatus()); err != nil {
			return err
		}
		message = fmt.Sprintf("Your cancellation request for order %s was rejected: %s",
			aggregate.Code(), cmd.RejectionReason())
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.CancellationRepository().Update(ctx, request); err != nil {
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
	h.notifier.NotifyUser(ctx, request.RequestedBy(), message, "/orders/"+aggregate.ID().String())
	h.notifier.Broadcast(ctx, ports.GroupStaffReviewed, EventCancellationReviewed, payload)
	h.notifier.Broadcast(ctx, ports.OrderGroup(aggregate.ID()), EventOrderStatusChanged, payload)

	return nil
}
