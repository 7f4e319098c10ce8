package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// RecordShipmentEventCommandHandler appends one immutable carrier event to
// the shipment log. Events are never updated or deleted; the carrier history
// of a tracking code is the ordered sequence of its events.
type RecordShipmentEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   Notifier
}

// NewRecordShipmentEventCommandHandler creates a handler for carrier events.
func NewRecordShipmentEventCommandHandler(uowFactory ShipmentUoWFactory, notifier Notifier) RecordShipmentEventCommandHandler {
	return RecordShipmentEventCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the carrier event command.
func (h RecordShipmentEventCommandHandler) Handle(ctx context.Context, cmd RecordShipmentEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := shipment.NewEvent(
		kernel.NewUUID(),
		cmd.TrackingCode(),
		cmd.Status(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Append(ctx, event); err != nil {
		return err
	}

	var stamped *kernel.UUID
	if cmd.OrderID() != nil {
		aggregate, err := uow.OrderRepository().Get(ctx, *cmd.OrderID())
		if err != nil {
			return err
		}
		if aggregate.TrackingCode() != cmd.TrackingCode() {
			if err = aggregate.SetTrackingCode(cmd.TrackingCode()); err != nil {
				return err
			}
			if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
				return err
			}
		}
		stamped = cmd.OrderID()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if stamped != nil {
		h.notifier.Broadcast(ctx, ports.OrderGroup(*stamped), EventOrderStatusChanged, OrderStatusPayload{
			OrderID: stamped.String(),
			Code:    cmd.TrackingCode(),
			Status:  cmd.Status(),
		})
	}

	return nil
}
