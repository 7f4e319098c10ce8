package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveReprintCommandIsNotConstructed = errors.New(
	"ApproveReprintCommand must be created via NewApproveReprintCommand constructor",
)

// ApproveReprintCommand represents a manager approving a batch of pending
// reprint requests. All flagged items must belong to the same order; the
// batch resolves into exactly one new zero-priced order.
type ApproveReprintCommand struct { //nolint:recvcheck //using for validation
	itemIDs   []kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveReprintCommand creates a command to approve a reprint batch.
func NewApproveReprintCommand(itemIDs []kernel.UUID, managerID kernel.UUID) (ApproveReprintCommand, error) {
	cmd := ApproveReprintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemIDs(itemIDs),
		cmd.setManagerID(managerID),
	); err != nil {
		return ApproveReprintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveReprintCommand) Validate() error {
	return c.guard.Validate(ErrApproveReprintCommandIsNotConstructed)
}

// ItemIDs returns the flagged line items of the batch.
func (c ApproveReprintCommand) ItemIDs() []kernel.UUID { return c.itemIDs }

// ManagerID returns the approving manager's identifier.
func (c ApproveReprintCommand) ManagerID() kernel.UUID { return c.managerID }

func (c *ApproveReprintCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("item IDs")
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *ApproveReprintCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	c.managerID = managerID
	return nil
}
