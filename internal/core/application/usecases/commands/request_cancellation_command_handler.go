package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RequestCancellationCommandHandler handles the business logic for
// cancellation requests. Preconditions checked against the loaded aggregate:
// the order belongs to the seller, its status is on the cancellable
// allow-list, it is unpaid, no cancellation is already pending, and no active
// invoice references it. On success the order is parked on Hold with its
// previous status snapshotted on the request.
type RequestCancellationCommandHandler struct {
	uowFactory CancellationUoWFactory
	notifier   Notifier
}

// NewRequestCancellationCommandHandler creates a handler for cancellation requests.
func NewRequestCancellationCommandHandler(
	uowFactory CancellationUoWFactory,
	notifier Notifier,
) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation request command.
func (h RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
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

	if err = aggregate.ValidateCancellable(); err != nil {
		return err
	}

	pending, err := uow.CancellationRepository().HasPending(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if pending {
		return errs.NewConflictError("cancellation request", aggregate.ID().String())
	}

	invoiced, err := uow.InvoiceRepository().HasActiveInvoice(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if invoiced {
		return errs.NewInvalidStateError("request cancellation", "order has an active invoice")
	}

	request, err := cancellation.NewRequest(
		cmd.RequestID(),
		aggregate.ID(),
		cmd.SellerID(),
		cmd.Reason(),
		aggregate.Status(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	aggregate.Hold()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.CancellationRepository().Add(ctx, request); err != nil {
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
	h.notifier.Broadcast(ctx, ports.GroupStaffRequests, EventCancellationRequested, payload)
	h.notifier.Broadcast(ctx, ports.OrderGroup(aggregate.ID()), EventOrderStatusChanged, payload)

	return nil
}
