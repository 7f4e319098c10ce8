package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Builds the aggregate with its line items in the NeedDesign state and
// persists it in one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(
			kernel.NewUUID(),
			spec.VariantID,
			spec.Category,
			spec.Quantity,
			spec.UnitPrice,
			spec.BaseCost,
			spec.Artifacts,
			spec.Note,
		)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Code(), cmd.SellerID(), cmd.Customer(), items)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.GroupStaffRequests, EventOrderStatusChanged, OrderStatusPayload{
		OrderID: newOrder.ID().String(),
		Code:    newOrder.Code(),
		Status:  newOrder.Status().String(),
	})

	return nil
}
