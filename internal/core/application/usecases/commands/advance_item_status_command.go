package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceItemStatusCommandIsNotConstructed = errors.New(
	"AdvanceItemStatusCommand must be created via NewAdvanceItemStatusCommand constructor",
)

// AdvanceItemStatusCommand represents a request to move one line item along
// the design-phase adjacency set. The order-level status is re-derived from
// the full sibling set after the move.
type AdvanceItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	newStatus order.ItemStatus
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceItemStatusCommand creates a command to advance a line item.
func NewAdvanceItemStatusCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	newStatus order.ItemStatus,
	actorID kernel.UUID,
) (AdvanceItemStatusCommand, error) {
	cmd := AdvanceItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setNewStatus(newStatus),
		cmd.setActorID(actorID),
	); err != nil {
		return AdvanceItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvanceItemStatusCommand) OrderID() kernel.UUID { return c.orderID }

// ItemID returns the target line item's identifier.
func (c AdvanceItemStatusCommand) ItemID() kernel.UUID { return c.itemID }

// NewStatus returns the requested item status.
func (c AdvanceItemStatusCommand) NewStatus() order.ItemStatus { return c.newStatus }

// ActorID returns the identifier of the user applying the transition.
func (c AdvanceItemStatusCommand) ActorID() kernel.UUID { return c.actorID }

func (c *AdvanceItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AdvanceItemStatusCommand) setNewStatus(newStatus order.ItemStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *AdvanceItemStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
